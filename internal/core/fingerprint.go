package core

import (
	"regexp"
	"strconv"

	"github.com/shopspring/decimal"
)

// fingerprintSep joins the fingerprint fields. The unit separator byte
// never occurs in statement text, so field boundaries are unambiguous.
const fingerprintSep = "\x1f"

var installmentPattern = regexp.MustCompile(`(?i)parcela\s+(\d+)/(\d+)`)

// ExtractInstallment finds the first "Parcela <n>/<m>" marker in a
// description, case-insensitively. Returns nil when absent.
func ExtractInstallment(description string) *Installment {
	m := installmentPattern.FindStringSubmatch(description)
	if m == nil {
		return nil
	}
	current, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	total, err := strconv.Atoi(m[2])
	if err != nil {
		return nil
	}
	return &Installment{Current: current, Total: total}
}

// Fingerprint derives the identity key of a transaction from its
// description, canonical amount and installment marker. Two transactions
// with identical fields always produce the same key and are treated as
// the same recurring charge across uploads. Identity is exact: case or
// whitespace differences in the description yield different keys.
func Fingerprint(description string, amount decimal.Decimal, installment *Installment) string {
	text := ""
	if installment != nil {
		text = installment.Text()
	}
	return description + fingerprintSep + CanonicalAmount(amount) + fingerprintSep + text
}

// TransactionFingerprint is a convenience over Fingerprint for a loaded
// transaction.
func TransactionFingerprint(t Transaction) string {
	return Fingerprint(t.Description, t.Amount, t.Installment)
}
