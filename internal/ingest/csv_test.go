package ingest

import (
	"errors"
	"strings"
	"testing"

	"fatura/internal/core"
)

func TestReadStatement(t *testing.T) {
	in := strings.Join([]string{
		"date,title,amount",
		"2025-06-01,Netflix,39.90",
		"02/06/2025,Market Parcela 2/3,90.00",
		"03-06-2025,Estorno loja,-50.00",
	}, "\n")

	txs, rowErrs, err := ReadStatement(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rowErrs) != 0 {
		t.Fatalf("unexpected row errors: %v", rowErrs)
	}
	if len(txs) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(txs))
	}

	if txs[0].Description != "Netflix" || txs[0].Amount.String() != "39.9" || txs[0].Installment != nil {
		t.Fatalf("unexpected first transaction: %+v", txs[0])
	}
	if txs[1].Installment == nil || txs[1].Installment.Current != 2 || txs[1].Installment.Total != 3 {
		t.Fatalf("expected installment (2,3), got %v", txs[1].Installment)
	}
	if txs[1].Date.Day() != 2 || txs[1].Date.Month() != 6 || txs[1].Date.Year() != 2025 {
		t.Fatalf("unexpected day-first date: %v", txs[1].Date)
	}
	if !txs[2].Amount.IsNegative() {
		t.Fatalf("expected negative amount, got %s", txs[2].Amount)
	}
}

func TestReadStatementColumnOrderAndCase(t *testing.T) {
	in := "Amount,Date,Title\n10.00,2025-01-15,Uber\n"
	txs, rowErrs, err := ReadStatement(strings.NewReader(in))
	if err != nil || len(rowErrs) != 0 || len(txs) != 1 {
		t.Fatalf("unexpected result: txs=%v rowErrs=%v err=%v", txs, rowErrs, err)
	}
	if txs[0].Description != "Uber" {
		t.Fatalf("unexpected description: %q", txs[0].Description)
	}
}

func TestReadStatementBadRowsExcludedNotZeroed(t *testing.T) {
	in := strings.Join([]string{
		"date,title,amount",
		"2025-06-01,Good,10.00",
		"not-a-date,Bad date,10.00",
		"2025-06-02,Bad amount,abc",
		"2025-06-03,Also good,5.00",
	}, "\n")

	txs, rowErrs, err := ReadStatement(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("expected 2 good transactions, got %d", len(txs))
	}
	if len(rowErrs) != 2 {
		t.Fatalf("expected 2 row errors, got %v", rowErrs)
	}
	if rowErrs[0].Row != 3 || rowErrs[0].Field != "date" {
		t.Fatalf("unexpected first row error: %+v", rowErrs[0])
	}
	if rowErrs[1].Row != 4 || rowErrs[1].Field != "amount" || !errors.Is(rowErrs[1], core.ErrInvalidAmount) {
		t.Fatalf("unexpected second row error: %+v", rowErrs[1])
	}
}

func TestReadStatementMissingColumn(t *testing.T) {
	in := "date,description,amount\n2025-06-01,x,1.00\n"
	_, _, err := ReadStatement(strings.NewReader(in))
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
}
