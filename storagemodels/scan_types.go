/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/shopspring/decimal"
)

// Summary is the outcome of one aggregation pass
type Summary struct {
	Total          decimal.Decimal `json:"total"`          // Exact sum of all payments
	ItemsProcessed int64           `json:"itemsProcessed"` // Items summed
	PagesProcessed int             `json:"pagesProcessed"` // Pages read from the table
	StartedAt      strfmt.DateTime `json:"startedAt"`
	FinishedAt     strfmt.DateTime `json:"finishedAt"`
}

// Duration returns the wall time of the pass
func (s *Summary) Duration() time.Duration {
	return time.Time(s.FinishedAt).Sub(time.Time(s.StartedAt))
}

// ScanOptions configures an aggregation pass
type ScanOptions struct {
	PageSize        int32              // Items per page, 0 leaves it to the store (default: 0)
	ConsistentRead  bool               // Strongly consistent reads (default: false)
	Attributes      []string           // Attributes to project, empty returns whole items
	ProgressHandler func(ScanProgress) // Optional progress callback
}

// ScanProgress tracks scan progress
type ScanProgress struct {
	ItemsProcessed int64           // Total items processed
	PagesProcessed int             // Total pages processed
	LastKey        Key             // Last evaluated key, nil once the scan is done
	RunningTotal   decimal.Decimal // Sum so far
	StartTime      time.Time       // When scanning started
	CurrentRate    float64         // Items per second
}

// ScanOption is a functional option for configuring a scan
type ScanOption func(*ScanOptions)

// DefaultScanOptions returns default scan options
func DefaultScanOptions() ScanOptions {
	return ScanOptions{}
}

// WithPageSize sets the DynamoDB page size
func WithPageSize(size int32) ScanOption {
	return func(opts *ScanOptions) {
		opts.PageSize = size
	}
}

// WithConsistentRead enables strongly consistent reads
func WithConsistentRead(consistent bool) ScanOption {
	return func(opts *ScanOptions) {
		opts.ConsistentRead = consistent
	}
}

// WithAttributes restricts the attributes read from each item
func WithAttributes(names ...string) ScanOption {
	return func(opts *ScanOptions) {
		opts.Attributes = append(opts.Attributes, names...)
	}
}

// WithProgressHandler sets a progress callback
func WithProgressHandler(handler func(ScanProgress)) ScanOption {
	return func(opts *ScanOptions) {
		opts.ProgressHandler = handler
	}
}
