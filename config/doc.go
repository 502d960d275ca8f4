/*
Package config loads the handler configuration.

Sources are applied in order, later ones overriding earlier ones:

  - Default(): table "BillingInfo", attribute "billing", field "payment"
  - an optional YAML file
  - an optional .env file in the working directory
  - environment variables (BILLING_TABLE_NAME, AWS_REGION, SCAN_PAGE_SIZE, ...)

Example file:

	tableName: BillingInfo
	billingAttribute: billing
	paymentField: payment
	region: us-east-1
	pageSize: 100
	logLevel: debug
*/
package config
