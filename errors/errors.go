/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrMissingBilling is returned when an item has no billing attribute, or the
	// billing object has no payment field
	ErrMissingBilling = errors.New("billing data missing")

	// ErrMalformedBilling is returned when the billing attribute cannot be decoded
	ErrMalformedBilling = errors.New("malformed billing data")

	// ErrInvalidPayment is returned when a payment value is not a non-negative decimal
	ErrInvalidPayment = errors.New("invalid payment value")

	// ErrScanFailed is returned when the underlying table scan fails
	ErrScanFailed = errors.New("table scan failed")

	// ErrInvalidConfig is returned when configuration validation fails
	ErrInvalidConfig = errors.New("invalid configuration")
)

// FieldError describes a problem with one field of a billing record.
type FieldError struct {
	Field  string
	Reason string
	kind   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: field %q: %s", e.kind, e.Field, e.Reason)
}

func (e *FieldError) Is(target error) bool {
	return target == e.kind
}

// PaymentError represents a payment value that could not be accepted
type PaymentError struct {
	Value  string
	Reason string
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("invalid payment value %q: %s", e.Value, e.Reason)
}

func (e *PaymentError) Is(target error) bool {
	return target == ErrInvalidPayment
}

// ItemError locates a per-item failure within a scan.
// Index is the 0-based position of the item across all pages, Page is 1-based.
type ItemError struct {
	Index int64
	Page  int
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d (page %d): %v", e.Index, e.Page, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// ScanError represents a failed request against the table
type ScanError struct {
	Table string
	Page  int
	Err   error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan of table %q failed on page %d: %v", e.Table, e.Page, e.Err)
}

func (e *ScanError) Is(target error) bool {
	return target == ErrScanFailed
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// ConfigError represents a configuration validation failure
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration for %q: %s", e.Field, e.Message)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Helper functions for creating errors

// NewMissingFieldError creates an error for an absent billing attribute or field
func NewMissingFieldError(field string) error {
	return &FieldError{Field: field, Reason: "not present", kind: ErrMissingBilling}
}

// NewMalformedFieldError creates an error for a billing attribute or field that cannot be decoded
func NewMalformedFieldError(field, reason string) error {
	return &FieldError{Field: field, Reason: reason, kind: ErrMalformedBilling}
}

// NewPaymentError creates a new PaymentError
func NewPaymentError(value, reason string) error {
	return &PaymentError{Value: value, Reason: reason}
}

// NewItemError wraps err with the position of the item that produced it
func NewItemError(index int64, page int, err error) error {
	return &ItemError{Index: index, Page: page, Err: err}
}

// NewScanError creates a new ScanError
func NewScanError(table string, page int, err error) error {
	return &ScanError{Table: table, Page: page, Err: err}
}

// NewConfigError creates a new ConfigError
func NewConfigError(field, message string) error {
	return &ConfigError{Field: field, Message: message}
}

// IsMissingBilling checks if an error is a missing billing error
func IsMissingBilling(err error) bool {
	return errors.Is(err, ErrMissingBilling)
}

// IsMalformedBilling checks if an error is a malformed billing error
func IsMalformedBilling(err error) bool {
	return errors.Is(err, ErrMalformedBilling)
}

// IsInvalidPayment checks if an error is an invalid payment error
func IsInvalidPayment(err error) bool {
	return errors.Is(err, ErrInvalidPayment)
}

// IsScanFailed checks if an error is a scan failure
func IsScanFailed(err error) bool {
	return errors.Is(err, ErrScanFailed)
}

// IsInvalidConfig checks if an error is a configuration error
func IsInvalidConfig(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}
