// Package excel maps the ledger to and from xlsx workbooks. Import and
// export share one header vocabulary so an exported file re-imports
// losslessly for the fields the importer reads.
package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/financify-dev/financify/internal/model"
)

// importFields is the ordered column vocabulary the importer resolves, per
// field: the localized header first, then the canonical key. Within a row
// the first non-empty cell among a field's headers wins.
var importFields = []struct {
	key     string
	headers []string
}{
	{"date", []string{"Tanggal", "date"}},
	{"accountId", []string{"ID Akun", "accountId"}},
	{"direction", []string{"Tipe", "direction"}},
	{"amount", []string{"Jumlah", "amount"}},
	{"description", []string{"Keterangan", "description"}},
}

// Skip records one dropped import row. Dropped rows are not errors; the list
// exists so callers can report how much of the file was usable.
type Skip struct {
	Row    int // 1-based workbook row
	Reason string
}

// Parse reads the first sheet of an xlsx workbook into entry candidates.
// Rows failing field validation are dropped and recorded in the skip list;
// candidates keep file row order and are never deduplicated. An unreadable
// workbook returns an error. A readable workbook with zero valid rows
// returns an empty candidate list and no error: treating that as a failure
// is the caller's contract.
func Parse(r io.Reader) ([]model.EntryCandidate, []Skip, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	cols := resolveColumns(rows[0])

	var candidates []model.EntryCandidate
	var skipped []Skip
	for i, row := range rows[1:] {
		rowNum := i + 2
		if blankRow(row) {
			continue
		}
		c, reason := parseRow(row, cols)
		if reason != "" {
			skipped = append(skipped, Skip{Row: rowNum, Reason: reason})
			continue
		}
		candidates = append(candidates, c)
	}
	return candidates, skipped, nil
}

// resolveColumns maps each field to the column indexes of its accepted
// headers, in alias priority order. Missing headers simply resolve to no
// columns; the per-row validation catches the resulting empty fields.
func resolveColumns(header []string) map[string][]int {
	byHeader := make(map[string]int, len(header))
	for i, h := range header {
		byHeader[strings.TrimSpace(h)] = i
	}

	cols := make(map[string][]int, len(importFields))
	for _, field := range importFields {
		for _, h := range field.headers {
			if i, ok := byHeader[h]; ok {
				cols[field.key] = append(cols[field.key], i)
			}
		}
	}
	return cols
}

// cellValue returns the first non-empty cell among a field's resolved
// columns.
func cellValue(row []string, cols []int) string {
	for _, i := range cols {
		if i >= len(row) {
			continue
		}
		if v := strings.TrimSpace(row[i]); v != "" {
			return v
		}
	}
	return ""
}

// parseRow extracts one candidate, returning a non-empty reason when the row
// must be dropped.
func parseRow(row []string, cols map[string][]int) (model.EntryCandidate, string) {
	date := cellValue(row, cols["date"])
	if date == "" {
		return model.EntryCandidate{}, "missing date"
	}

	accountID := cellValue(row, cols["accountId"])
	if accountID == "" {
		return model.EntryCandidate{}, "missing account id"
	}

	direction := model.Direction(strings.ToLower(cellValue(row, cols["direction"])))
	if !direction.Valid() {
		return model.EntryCandidate{}, "direction must be debit or credit"
	}

	// Excel serializes numeric cells as float or scientific text; decimal
	// absorbs both before the integral minor-unit conversion.
	raw := cellValue(row, cols["amount"])
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return model.EntryCandidate{}, fmt.Sprintf("invalid amount %q", raw)
	}
	amount := d.IntPart()
	if amount == 0 {
		return model.EntryCandidate{}, "amount must be non-zero"
	}

	description := cellValue(row, cols["description"])
	if description == "" {
		return model.EntryCandidate{}, "missing description"
	}

	return model.EntryCandidate{
		Date:        date,
		AccountID:   accountID,
		Direction:   direction,
		Amount:      amount,
		Description: description,
	}, ""
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
