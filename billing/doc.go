// Package billing turns the billing attribute of a table item into an exact
// decimal payment.
package billing
