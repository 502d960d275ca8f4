/*
Package errors provides semantic error types for the payment aggregation path.

Every failure ends up as the same 500 response, but the errors are typed so
that logs and tests can tell them apart with errors.Is() or the helpers:

	var (
	    ErrMissingBilling   = errors.New("billing data missing")
	    ErrMalformedBilling = errors.New("malformed billing data")
	    ErrInvalidPayment   = errors.New("invalid payment value")
	    ErrScanFailed       = errors.New("table scan failed")
	    ErrInvalidConfig    = errors.New("invalid configuration")
	)

Usage:

	summary, err := agg.Sum(ctx)
	if err != nil {
	    if errors.IsScanFailed(err) {
	        // the store rejected a request
	    }
	    var itemErr *errors.ItemError
	    if stderrors.As(err, &itemErr) {
	        log.Printf("bad item %d on page %d", itemErr.Index, itemErr.Page)
	    }
	}

ItemError and ScanError wrap their cause, so the sentinels still match
after wrapping with fmt.Errorf("...: %w", err).
*/
package errors
