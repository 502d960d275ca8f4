/*
Package ddb provides a DynamoDB implementation of the datastore.Scanner interface.

The DynamodbScanner issues one Scan request per page and returns the
LastEvaluatedKey untouched, so the caller drives continuation:

	client, err := ddb.NewDynamoDBClient(ctx, ddb.ClientOptions{Region: "us-east-1"})
	scanner := ddb.NewScanner(client, "BillingInfo")

	page, err := scanner.ScanPage(ctx, &storagemodels.ScanParams{Limit: aws.Int32(100)})

Any value satisfying ScanAPI can stand in for *dynamodb.Client, which is how
the tests exercise the scanner without AWS access. Set ClientOptions.Endpoint
to point the client at DynamoDB Local.
*/
package ddb
