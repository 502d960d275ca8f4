/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of datastore.Scanner for testing
package mock

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/suparena/billingtotal/storagemodels"
)

// offsetKey is the attribute used in continuation keys handed out by the mock.
const offsetKey = "offset"

// Scanner is a mock implementation of datastore.Scanner that serves a fixed
// list of items in pages
type Scanner struct {
	mu        sync.RWMutex
	tableName string
	items     []storagemodels.Item
	pageSize  int
	failCall  int
	failError error
	calls     []storagemodels.ScanParams
}

// New creates a new mock Scanner holding the given items
func New(items ...storagemodels.Item) *Scanner {
	return &Scanner{
		tableName: "BillingInfo",
		items:     items,
		pageSize:  len(items),
	}
}

// WithTableName sets the name reported by TableName
func (m *Scanner) WithTableName(name string) *Scanner {
	m.tableName = name
	return m
}

// WithPageSize splits the items into pages of the given size.
// A Limit in the scan params takes precedence.
func (m *Scanner) WithPageSize(size int) *Scanner {
	m.pageSize = size
	return m
}

// WithErrorOnCall makes the n-th ScanPage call (1-based) return err
func (m *Scanner) WithErrorOnCall(n int, err error) *Scanner {
	m.failCall = n
	m.failError = err
	return m
}

// ScanPage returns the page that starts at the offset encoded in params.ExclusiveStartKey
func (m *Scanner) ScanPage(ctx context.Context, params *storagemodels.ScanParams) (*storagemodels.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var p storagemodels.ScanParams
	if params != nil {
		p = *params
	}
	m.calls = append(m.calls, p)

	if m.failCall > 0 && len(m.calls) == m.failCall {
		return nil, m.failError
	}

	start, err := decodeOffset(p.ExclusiveStartKey)
	if err != nil {
		return nil, err
	}
	if start > len(m.items) {
		return nil, fmt.Errorf("mock: start offset %d beyond %d items", start, len(m.items))
	}

	size := m.pageSize
	if p.Limit != nil && *p.Limit > 0 {
		size = int(*p.Limit)
	}
	end := len(m.items)
	if size > 0 && start+size < end {
		end = start + size
	}

	page := &storagemodels.Page{
		Items: make([]storagemodels.Item, 0, end-start),
	}
	for _, item := range m.items[start:end] {
		page.Items = append(page.Items, copyItem(item))
	}
	if end < len(m.items) {
		page.LastEvaluatedKey = storagemodels.Key{
			offsetKey: &types.AttributeValueMemberN{Value: strconv.Itoa(end)},
		}
	}
	return page, nil
}

// TableName returns the configured table name
func (m *Scanner) TableName() string {
	return m.tableName
}

// Helper methods for testing

// Calls returns a copy of the params received so far
func (m *Scanner) Calls() []storagemodels.ScanParams {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]storagemodels.ScanParams, len(m.calls))
	copy(result, m.calls)
	return result
}

// Count returns the number of stored items
func (m *Scanner) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Reset clears the recorded calls
func (m *Scanner) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}

func decodeOffset(key storagemodels.Key) (int, error) {
	if len(key) == 0 {
		return 0, nil
	}
	attr, ok := key[offsetKey].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("mock: unrecognized start key")
	}
	return strconv.Atoi(attr.Value)
}

func copyItem(item storagemodels.Item) storagemodels.Item {
	c := make(storagemodels.Item, len(item))
	for k, v := range item {
		c[k] = v
	}
	return c
}
