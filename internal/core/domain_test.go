package core

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseRoster(t *testing.T) {
	cases := []struct {
		in  string
		out []string
	}{
		{"Ana, Bea, Caio", []string{"Ana", "Bea", "Caio"}},
		{" Ana ,, Bea ", []string{"Ana", "Bea"}},
		{"Ana, Ana, Bea", []string{"Ana", "Bea"}},
		{"Ana, ana", []string{"Ana", "ana"}}, // exact text differs
		{"", nil},
		{" , , ", nil},
	}
	for i, tc := range cases {
		got := ParseRoster(tc.in)
		if len(got) != len(tc.out) {
			t.Fatalf("case %d: expected %v, got %v", i, tc.out, got)
		}
		for j := range got {
			if got[j] != tc.out[j] {
				t.Fatalf("case %d: expected %v, got %v", i, tc.out, got)
			}
		}
	}
}

func TestRosterContains(t *testing.T) {
	r := Roster{"Ana", "Bea"}
	if !r.Contains("Ana") || r.Contains("Caio") {
		t.Fatalf("unexpected containment: %v", r)
	}
}

func TestInstallmentText(t *testing.T) {
	tx := Transaction{Installment: &Installment{Current: 2, Total: 3}}
	if got := tx.InstallmentText(); got != "2/3" {
		t.Fatalf("expected 2/3, got %q", got)
	}
	if got := (Transaction{}).InstallmentText(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		Date:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Description: "Market",
		Amount:      decimal.NewFromInt(10),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Transaction{
		{Description: "Market", Amount: decimal.NewFromInt(10)}, // zero date
		{Date: good.Date, Description: "  ", Amount: good.Amount},
	}
	for i, tx := range bads {
		if err := tx.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}
