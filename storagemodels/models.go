/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Item is a raw record as returned by the table.
type Item = map[string]types.AttributeValue

// Key identifies the position to continue a scan from.
type Key = map[string]types.AttributeValue

// Page is one batch of a scan.
type Page struct {
	// Items holds the records of this page, possibly none.
	Items []Item
	// LastEvaluatedKey is the continuation marker.
	// A nil or empty key means the scan is complete.
	LastEvaluatedKey Key
}

// HasMore reports whether another page follows this one.
func (p *Page) HasMore() bool {
	return len(p.LastEvaluatedKey) > 0
}

// ScanParams defines parameters for a single page request.
// The table itself is a property of the scanner.
type ScanParams struct {
	// ProjectionExpression optionally restricts the attributes returned.
	ProjectionExpression *string
	// ExpressionAttributeNames contains the names for projection placeholders.
	ExpressionAttributeNames map[string]string
	// Limit defines an optional limit per scan page.
	Limit *int32
	// ConsistentRead requests strongly consistent reads.
	ConsistentRead *bool
	// ExclusiveStartKey for pagination
	ExclusiveStartKey Key
}
