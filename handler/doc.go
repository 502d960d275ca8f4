// Package handler adapts the payment aggregator to the Lambda invocation
// contract: any event in, {statusCode, body} out.
package handler
