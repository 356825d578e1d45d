// Package report assembles the split workbook: an overview sheet, a
// totals sheet and one sheet per roster person. The workbook is built
// fully in memory; writing it anywhere is the caller's business.
package report

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"fatura/internal/core"
)

const (
	overviewSheet = "Fatura Dividida"
	totalsSheet   = "Totais"

	// Excel caps sheet names at 31 characters.
	maxSheetName = 31

	headerFill = "DCE6F1"
	colWidth   = 20
)

var overviewHeader = []interface{}{"Data", "Descrição", "Parcela", "Valor", "Dividido por", "Valor por Pessoa"}
var personHeader = []interface{}{"Data", "Descrição", "Parcela", "Valor total", "Participantes", "Valor pago por essa pessoa"}

// Build assembles the workbook from a finalized allocation set. The
// allocation slice runs parallel to the transaction slice; totals come
// from aggregation and are emitted in roster order so the layout is
// reproducible.
func Build(txs []core.Transaction, allocations []core.Allocation, roster core.Roster, totals map[string]decimal.Decimal) (*excelize.File, error) {
	if len(txs) != len(allocations) {
		return nil, fmt.Errorf("build report: %d transactions but %d allocations", len(txs), len(allocations))
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", overviewSheet); err != nil {
		return nil, fmt.Errorf("rename overview sheet: %w", err)
	}

	if err := writeOverview(f, txs, allocations); err != nil {
		return nil, err
	}
	if err := writeTotals(f, roster, totals); err != nil {
		return nil, err
	}

	used := map[string]struct{}{overviewSheet: {}, totalsSheet: {}}
	for _, person := range roster {
		if err := writePersonSheet(f, sheetTitle(person, used), person, txs, allocations); err != nil {
			return nil, err
		}
	}

	if idx, err := f.GetSheetIndex(overviewSheet); err == nil {
		f.SetActiveSheet(idx)
	}
	return f, nil
}

func writeOverview(f *excelize.File, txs []core.Transaction, allocations []core.Allocation) error {
	if err := f.SetSheetRow(overviewSheet, "A1", &overviewHeader); err != nil {
		return fmt.Errorf("write overview header: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	if err := f.SetCellStyle(overviewSheet, "A1", "F1", style); err != nil {
		return fmt.Errorf("style overview header: %w", err)
	}

	for i, tx := range txs {
		row := transactionRow(tx, allocations[i])
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(overviewSheet, cell, &row); err != nil {
			return fmt.Errorf("write overview row %d: %w", i+2, err)
		}
	}

	return setWidths(f, overviewSheet)
}

func writeTotals(f *excelize.File, roster core.Roster, totals map[string]decimal.Decimal) error {
	if _, err := f.NewSheet(totalsSheet); err != nil {
		return fmt.Errorf("create totals sheet: %w", err)
	}
	header := []interface{}{"Pessoa", "Total (R$)"}
	if err := f.SetSheetRow(totalsSheet, "A1", &header); err != nil {
		return fmt.Errorf("write totals header: %w", err)
	}

	row := 2
	for _, person := range roster {
		total, ok := totals[person]
		if !ok {
			continue
		}
		values := []interface{}{person, total.InexactFloat64()}
		if err := f.SetSheetRow(totalsSheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return fmt.Errorf("write totals row for %s: %w", person, err)
		}
		row++
	}

	if err := f.SetColWidth(totalsSheet, "A", "B", colWidth); err != nil {
		return fmt.Errorf("size totals columns: %w", err)
	}
	return nil
}

func writePersonSheet(f *excelize.File, title, person string, txs []core.Transaction, allocations []core.Allocation) error {
	if _, err := f.NewSheet(title); err != nil {
		return fmt.Errorf("create sheet %q: %w", title, err)
	}
	if err := f.SetSheetRow(title, "A1", &personHeader); err != nil {
		return fmt.Errorf("write header of %q: %w", title, err)
	}

	row := 2
	for i, tx := range txs {
		if !participates(allocations[i], person) {
			continue
		}
		values := transactionRow(tx, allocations[i])
		if err := f.SetSheetRow(title, fmt.Sprintf("A%d", row), &values); err != nil {
			return fmt.Errorf("write row %d of %q: %w", row, title, err)
		}
		row++
	}

	return setWidths(f, title)
}

func transactionRow(tx core.Transaction, a core.Allocation) []interface{} {
	return []interface{}{
		tx.Date.Format("02/01/2006"),
		tx.Description,
		tx.InstallmentText(),
		tx.Amount.InexactFloat64(),
		joinNames(a.Participants),
		a.PerPerson.InexactFloat64(),
	}
}

func participates(a core.Allocation, person string) bool {
	for _, p := range a.Participants {
		if p == person {
			return true
		}
	}
	return false
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}

func setWidths(f *excelize.File, sheet string) error {
	if err := f.SetColWidth(sheet, "A", "F", colWidth); err != nil {
		return fmt.Errorf("size columns of %q: %w", sheet, err)
	}
	return nil
}

// sheetTitle truncates a person's name to the sheet-name limit and, when
// two names collapse to the same title, appends a ~2, ~3… suffix in
// place of the tail instead of silently overwriting the earlier sheet.
func sheetTitle(person string, used map[string]struct{}) string {
	title := truncateRunes(person, maxSheetName)
	if _, taken := used[title]; !taken {
		used[title] = struct{}{}
		return title
	}
	for n := 2; ; n++ {
		suffix := fmt.Sprintf("~%d", n)
		candidate := truncateRunes(person, maxSheetName-len(suffix)) + suffix
		if _, taken := used[candidate]; !taken {
			used[candidate] = struct{}{}
			return candidate
		}
	}
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
