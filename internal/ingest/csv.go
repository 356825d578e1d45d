// Package ingest reads the inputs of a splitting session: the statement
// CSV exported by the card issuer and the decisions file holding the
// classifications made for unrecognized charges.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"fatura/internal/core"
)

// RowError reports a statement row whose date or amount could not be
// interpreted. The row is excluded from processing, never zeroed.
type RowError struct {
	Row   int // 1-based line number, header included
	Field string
	Err   error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s: %v", e.Row, e.Field, e.Err)
}

func (e RowError) Unwrap() error { return e.Err }

var ErrMissingColumn = errors.New("missing required column")

// Date layouts accepted from the statement, day-first variants matching
// the issuer's export.
var dateLayouts = []string{"2006-01-02", "02/01/2006", "02-01-2006"}

// ReadStatement parses a statement CSV with a header naming the date,
// title and amount columns (any order, case-insensitive). Rows that fail
// to parse are returned as RowErrors alongside the good transactions;
// only a malformed file or a missing column fails the read as a whole.
func ReadStatement(r io.Reader) ([]core.Transaction, []RowError, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("read statement header: empty file")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read statement header: %w", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"date", "title", "amount"} {
		if _, ok := cols[required]; !ok {
			return nil, nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	var (
		txs     []core.Transaction
		rowErrs []RowError
	)
	for row := 2; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read statement row %d: %w", row, err)
		}

		date, err := parseDate(record[cols["date"]])
		if err != nil {
			rowErrs = append(rowErrs, RowError{Row: row, Field: "date", Err: err})
			continue
		}

		amount, err := core.ParseAmount(record[cols["amount"]])
		if err != nil {
			rowErrs = append(rowErrs, RowError{Row: row, Field: "amount", Err: err})
			continue
		}

		description := record[cols["title"]]
		txs = append(txs, core.Transaction{
			Date:        date,
			Description: description,
			Amount:      amount,
			Installment: core.ExtractInstallment(description),
		})
	}

	return txs, rowErrs, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", core.ErrInvalidDate, s)
}
