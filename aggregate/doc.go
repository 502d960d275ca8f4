/*
Package aggregate computes the exact total of all payments stored in a table.

The Aggregator reads pages from a datastore.Scanner, following each page's
LastEvaluatedKey until the store reports no more data, and adds every
payment with decimal arithmetic:

	agg := aggregate.New(scanner,
	    storagemodels.WithPageSize(100),
	    storagemodels.WithAttributes("billing"),
	)
	summary, err := agg.Sum(ctx)
	if err != nil {
	    return err
	}
	fmt.Println(billing.FormatAmount(summary.Total))

Sum returns either a complete Summary or an error, never both.
*/
package aggregate
