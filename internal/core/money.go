// Package core provides the domain model of the bill splitter:
// transactions, installment markers, fingerprints and allocations.
//
// This file contains amount parsing and canonical rendering. Amounts are
// signed decimals; refunds show up as negative values and flow through
// the split arithmetic unchanged.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a statement amount string to a decimal value.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and an
// optional leading sign. Returns ErrInvalidAmount for anything that does
// not parse as a plain decimal number.
//
// Examples:
//
//	ParseAmount("39.90")  -> 39.9
//	ParseAmount("39,90")  -> 39.9
//	ParseAmount("-12.50") -> -12.5
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// CanonicalAmount renders an amount as its minimal decimal string, the
// form folded into fingerprints: trailing zeros are dropped, so 39.90
// and 39.9 render identically while 39.91 differs.
func CanonicalAmount(d decimal.Decimal) string {
	return d.String()
}
