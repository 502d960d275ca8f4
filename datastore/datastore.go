/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/billingtotal/storagemodels"
)

// Scanner reads a table one page at a time.
type Scanner interface {
	// ScanPage returns the page starting at params.ExclusiveStartKey,
	// or the first page when the key is empty.
	ScanPage(ctx context.Context, params *storagemodels.ScanParams) (*storagemodels.Page, error)

	// TableName names the table being scanned.
	TableName() string
}
