/*
Package billingtotal computes the total of all payments recorded in a
DynamoDB table and serves it from an AWS Lambda function.

Each item of the table carries a billing attribute, a JSON document with a
payment amount written as text:

	{"id": "inv-001", "billing": "{\"payment\": \"10.50\"}"}

On every invocation the function scans the whole table page by page,
adds the payments with exact decimal arithmetic and answers with

	{"statusCode": 200, "body": "\"Total payment: 16.00\""}

or, if anything goes wrong,

	{"statusCode": 500, "body": "\"Error: ...\""}

Packages:
  - config: defaults, YAML file, .env and environment overrides
  - datastore, datastore/ddb, datastore/mock: paged table scanning
  - billing: payment extraction and decimal parsing
  - aggregate: the scan-and-sum pass
  - handler: the Lambda entry point
  - cmd/paymentsum: the executable

Basic Usage:

	client, _ := ddb.NewDynamoDBClient(ctx, ddb.ClientOptions{Region: "us-east-1"})
	agg := aggregate.New(ddb.NewScanner(client, "BillingInfo"))
	h := handler.New(agg, logger)
	lambda.Start(h.Handle)
*/
package billingtotal
