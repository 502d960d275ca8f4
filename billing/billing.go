/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package billing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/suparena/billingtotal/errors"
	"github.com/suparena/billingtotal/storagemodels"
)

const (
	// DefaultAttribute is the item attribute holding the billing record.
	DefaultAttribute = "billing"
	// DefaultPaymentField is the member of the billing record holding the amount.
	DefaultPaymentField = "payment"
)

// Parser extracts payment amounts from table items.
type Parser struct {
	// Attribute names the item attribute carrying the billing record, either
	// as a JSON string (S) or as a native map (M).
	Attribute string
	// PaymentField names the payment member inside the billing record.
	PaymentField string
}

// DefaultParser returns a parser for the "billing" attribute and its "payment" field.
func DefaultParser() Parser {
	return Parser{Attribute: DefaultAttribute, PaymentField: DefaultPaymentField}
}

// Payment returns the exact payment amount recorded in item.
func (p Parser) Payment(item storagemodels.Item) (decimal.Decimal, error) {
	attr, ok := item[p.Attribute]
	if !ok {
		return decimal.Zero, errors.NewMissingFieldError(p.Attribute)
	}

	var raw string
	switch av := attr.(type) {
	case *types.AttributeValueMemberS:
		var err error
		raw, err = p.fromJSON(av.Value)
		if err != nil {
			return decimal.Zero, err
		}
	case *types.AttributeValueMemberM:
		var err error
		raw, err = p.fromMap(av.Value)
		if err != nil {
			return decimal.Zero, err
		}
	case *types.AttributeValueMemberNULL:
		return decimal.Zero, errors.NewMissingFieldError(p.Attribute)
	default:
		return decimal.Zero, errors.NewMalformedFieldError(p.Attribute, fmt.Sprintf("unsupported attribute type %T", attr))
	}

	return ParseAmount(raw)
}

// fromJSON decodes a JSON-serialized billing record and returns the payment text.
func (p Parser) fromJSON(doc string) (string, error) {
	var record map[string]json.RawMessage
	if err := json.Unmarshal([]byte(doc), &record); err != nil {
		return "", errors.NewMalformedFieldError(p.Attribute, err.Error())
	}
	if record == nil {
		return "", errors.NewMalformedFieldError(p.Attribute, "billing record is null")
	}

	value, ok := record[p.PaymentField]
	if !ok {
		return "", errors.NewMissingFieldError(p.PaymentField)
	}
	value = bytes.TrimSpace(value)

	switch {
	case len(value) > 0 && value[0] == '"':
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return "", errors.NewMalformedFieldError(p.PaymentField, err.Error())
		}
		return s, nil
	case len(value) > 0 && (value[0] == '-' || (value[0] >= '0' && value[0] <= '9')):
		// A bare JSON number is taken verbatim so no float conversion happens.
		return string(value), nil
	case bytes.Equal(value, []byte("null")):
		return "", errors.NewMissingFieldError(p.PaymentField)
	default:
		return "", errors.NewMalformedFieldError(p.PaymentField, "payment must be a string or a number")
	}
}

// fromMap reads the payment member of a billing record stored as a DynamoDB map.
func (p Parser) fromMap(record map[string]types.AttributeValue) (string, error) {
	value, ok := record[p.PaymentField]
	if !ok {
		return "", errors.NewMissingFieldError(p.PaymentField)
	}

	switch v := value.(type) {
	case *types.AttributeValueMemberS:
		return v.Value, nil
	case *types.AttributeValueMemberN:
		return v.Value, nil
	case *types.AttributeValueMemberNULL:
		return "", errors.NewMissingFieldError(p.PaymentField)
	}

	// Anything else is decoded for the error message only.
	var generic interface{}
	if err := attributevalue.Unmarshal(value, &generic); err != nil {
		return "", errors.NewMalformedFieldError(p.PaymentField, err.Error())
	}
	return "", errors.NewMalformedFieldError(p.PaymentField, fmt.Sprintf("payment must be a string or a number, got %T", generic))
}

// ParseAmount converts payment text into an exact decimal.
// Surrounding whitespace is ignored. Negative amounts are rejected.
func ParseAmount(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return decimal.Zero, errors.NewPaymentError(s, "empty value")
	}

	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, errors.NewPaymentError(s, "not a decimal number")
	}
	if d.IsNegative() {
		return decimal.Zero, errors.NewPaymentError(s, "must not be negative")
	}
	return d, nil
}

// FormatAmount renders d keeping its scale, so 16.00 stays "16.00".
func FormatAmount(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}
