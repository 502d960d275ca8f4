/*
Package datastore defines the store interface the aggregator reads from.

The main interface is Scanner, which hands out one page per call and leaves
continuation to the caller:

	type Scanner interface {
	    ScanPage(ctx context.Context, params *storagemodels.ScanParams) (*storagemodels.Page, error)
	    TableName() string
	}

Implementations:
  - ddb: DynamoDB implementation backed by the Scan API
  - mock: In-memory paged implementation for testing
*/
package datastore
