/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
		sentinel error
	}{
		{
			name:     "missing",
			err:      NewMissingFieldError("billing"),
			expected: `billing data missing: field "billing": not present`,
			sentinel: ErrMissingBilling,
		},
		{
			name:     "malformed",
			err:      NewMalformedFieldError("billing", "unexpected end of JSON input"),
			expected: `malformed billing data: field "billing": unexpected end of JSON input`,
			sentinel: ErrMalformedBilling,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.ErrorIs(t, tt.err, tt.sentinel)
		})
	}

	assert.True(t, IsMissingBilling(NewMissingFieldError("payment")))
	assert.False(t, IsMissingBilling(NewMalformedFieldError("payment", "bad")))
	assert.True(t, IsMalformedBilling(NewMalformedFieldError("payment", "bad")))
}

func TestPaymentError(t *testing.T) {
	err := NewPaymentError("-1.00", "must not be negative")

	assert.Equal(t, `invalid payment value "-1.00": must not be negative`, err.Error())
	assert.True(t, IsInvalidPayment(err))
	assert.False(t, IsMalformedBilling(err))
}

func TestItemErrorUnwraps(t *testing.T) {
	inner := NewPaymentError("abc", "not a decimal number")
	err := NewItemError(7, 2, inner)

	assert.Equal(t, `item 7 (page 2): invalid payment value "abc": not a decimal number`, err.Error())
	assert.True(t, IsInvalidPayment(err))

	var itemErr *ItemError
	require.True(t, errors.As(err, &itemErr))
	assert.Equal(t, int64(7), itemErr.Index)
	assert.Equal(t, 2, itemErr.Page)
}

func TestScanError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewScanError("BillingInfo", 3, cause)

	assert.Equal(t, `scan of table "BillingInfo" failed on page 3: connection refused`, err.Error())
	assert.True(t, IsScanFailed(err))
	assert.ErrorIs(t, err, cause)
}

func TestConfigError(t *testing.T) {
	err := NewConfigError("TableName", "must not be empty")

	assert.Equal(t, `invalid configuration for "TableName": must not be empty`, err.Error())
	assert.True(t, IsInvalidConfig(err))
}

func TestErrorWrapping(t *testing.T) {
	original := NewMissingFieldError("billing")
	wrapped := fmt.Errorf("aggregate payments: %w", NewItemError(0, 1, original))

	assert.True(t, IsMissingBilling(wrapped))
	assert.False(t, IsScanFailed(wrapped))
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrMissingBilling,
		ErrMalformedBilling,
		ErrInvalidPayment,
		ErrScanFailed,
		ErrInvalidConfig,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v matches %v", err1, err2)
			}
		}
	}
}
