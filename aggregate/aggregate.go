/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package aggregate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/go-openapi/strfmt"
	"github.com/shopspring/decimal"
	"github.com/suparena/billingtotal/billing"
	"github.com/suparena/billingtotal/datastore"
	"github.com/suparena/billingtotal/errors"
	"github.com/suparena/billingtotal/storagemodels"
)

// Aggregator sums the payments of every item in a table.
// It holds no state between calls to Sum.
type Aggregator struct {
	scanner datastore.Scanner
	parser  billing.Parser
	options storagemodels.ScanOptions
}

// New creates an Aggregator reading from scanner with the default billing parser.
func New(scanner datastore.Scanner, opts ...storagemodels.ScanOption) *Aggregator {
	options := storagemodels.DefaultScanOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &Aggregator{
		scanner: scanner,
		parser:  billing.DefaultParser(),
		options: options,
	}
}

// WithParser replaces the billing parser
func (a *Aggregator) WithParser(p billing.Parser) *Aggregator {
	a.parser = p
	return a
}

// Sum scans the whole table and returns the exact total of all payments.
// The first failing page or item aborts the pass; no partial total is returned.
func (a *Aggregator) Sum(ctx context.Context) (*storagemodels.Summary, error) {
	startTime := time.Now()
	total := decimal.Zero
	var itemIndex int64
	var pageNumber int

	reportProgress := func(lastKey storagemodels.Key) {
		if a.options.ProgressHandler == nil {
			return
		}
		progress := storagemodels.ScanProgress{
			ItemsProcessed: itemIndex,
			PagesProcessed: pageNumber,
			LastKey:        lastKey,
			RunningTotal:   total,
			StartTime:      startTime,
		}
		if elapsed := time.Since(startTime).Seconds(); elapsed > 0 {
			progress.CurrentRate = float64(itemIndex) / elapsed
		}
		a.options.ProgressHandler(progress)
	}

	params := a.baseParams()
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("aggregation interrupted after %d pages: %w", pageNumber, err)
		}

		page, err := a.scanner.ScanPage(ctx, params)
		if err != nil {
			return nil, errors.NewScanError(a.scanner.TableName(), pageNumber+1, err)
		}
		pageNumber++

		for _, item := range page.Items {
			payment, err := a.parser.Payment(item)
			if err != nil {
				return nil, errors.NewItemError(itemIndex, pageNumber, err)
			}
			total = total.Add(payment)
			itemIndex++
		}

		reportProgress(page.LastEvaluatedKey)

		if !page.HasMore() {
			break
		}
		params.ExclusiveStartKey = page.LastEvaluatedKey
	}

	reportProgress(nil)

	return &storagemodels.Summary{
		Total:          total,
		ItemsProcessed: itemIndex,
		PagesProcessed: pageNumber,
		StartedAt:      strfmt.DateTime(startTime),
		FinishedAt:     strfmt.DateTime(time.Now()),
	}, nil
}

// baseParams builds the request parameters shared by every page.
func (a *Aggregator) baseParams() *storagemodels.ScanParams {
	params := &storagemodels.ScanParams{}
	if a.options.PageSize > 0 {
		params.Limit = aws.Int32(a.options.PageSize)
	}
	if a.options.ConsistentRead {
		params.ConsistentRead = aws.Bool(true)
	}
	if len(a.options.Attributes) > 0 {
		names := make(map[string]string, len(a.options.Attributes))
		placeholders := make([]string, 0, len(a.options.Attributes))
		for i, attr := range a.options.Attributes {
			ph := fmt.Sprintf("#p%d", i)
			names[ph] = attr
			placeholders = append(placeholders, ph)
		}
		params.ProjectionExpression = aws.String(strings.Join(placeholders, ", "))
		params.ExpressionAttributeNames = names
	}
	return params
}
