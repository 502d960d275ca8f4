/*
Package storagemodels defines the data structures shared by the scanner
implementations and the aggregator.

Key Types:

Page:
One batch of a table scan. The scan continues while LastEvaluatedKey is set:

	page, err := scanner.ScanPage(ctx, &ScanParams{})
	for err == nil && page.HasMore() {
	    page, err = scanner.ScanPage(ctx, &ScanParams{ExclusiveStartKey: page.LastEvaluatedKey})
	}

ScanParams:
Parameters for a single page request:

	params := &ScanParams{
	    Limit:             aws.Int32(100),
	    ExclusiveStartKey: lastKey,
	}

Summary:
The result of an aggregation pass, an exact decimal total plus counters:

	type Summary struct {
	    Total          decimal.Decimal
	    ItemsProcessed int64
	    PagesProcessed int
	    StartedAt      strfmt.DateTime
	    FinishedAt     strfmt.DateTime
	}

ScanOptions:
Configuration for the pass:

	opts := []ScanOption{
	    WithPageSize(25),
	    WithProgressHandler(progressFunc),
	}
*/
package storagemodels
