package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestExtractInstallment(t *testing.T) {
	cases := []struct {
		desc string
		want *Installment
	}{
		{"Market Parcela 2/3", &Installment{Current: 2, Total: 3}},
		{"PARCELA 1/12 Loja", &Installment{Current: 1, Total: 12}},
		{"parcela  10/10", &Installment{Current: 10, Total: 10}},
		{"Parcela 1/2 e Parcela 3/4", &Installment{Current: 1, Total: 2}}, // first match wins
		{"Netflix", nil},
		{"Parcela x/y", nil},
		{"", nil},
	}
	for i, tc := range cases {
		got := ExtractInstallment(tc.desc)
		if (got == nil) != (tc.want == nil) {
			t.Fatalf("case %d: expected %v, got %v", i, tc.want, got)
		}
		if got != nil && *got != *tc.want {
			t.Fatalf("case %d: expected %v, got %v", i, *tc.want, *got)
		}
	}
}

func TestFingerprintDeterminism(t *testing.T) {
	amount := decimal.RequireFromString("39.90")
	inst := &Installment{Current: 2, Total: 3}

	a := Fingerprint("Netflix", amount, nil)
	b := Fingerprint("Netflix", amount, nil)
	if a != b {
		t.Fatalf("identical inputs must produce identical fingerprints")
	}

	variants := []string{
		Fingerprint("netflix", amount, nil),          // case differs
		Fingerprint("Netflix ", amount, nil),         // whitespace differs
		Fingerprint("Netflix", amount.Add(decimal.New(1, -2)), nil),
		Fingerprint("Netflix", amount, inst),
	}
	for i, v := range variants {
		if v == a {
			t.Fatalf("variant %d should differ from base fingerprint", i)
		}
	}
}

func TestFingerprintCanonicalAmount(t *testing.T) {
	a := Fingerprint("Netflix", decimal.RequireFromString("39.90"), nil)
	b := Fingerprint("Netflix", decimal.RequireFromString("39.9"), nil)
	if a != b {
		t.Fatalf("trailing zeros must not change the fingerprint")
	}
}

func TestTransactionFingerprint(t *testing.T) {
	desc := "Market Parcela 2/3"
	amount := decimal.RequireFromString("90.00")
	tx := Transaction{
		Description: desc,
		Amount:      amount,
		Installment: ExtractInstallment(desc),
	}
	if tx.Installment == nil || tx.Installment.Current != 2 || tx.Installment.Total != 3 {
		t.Fatalf("expected installment (2,3), got %v", tx.Installment)
	}
	if TransactionFingerprint(tx) != Fingerprint(desc, amount, tx.Installment) {
		t.Fatalf("convenience form must match Fingerprint")
	}
}
