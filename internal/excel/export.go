package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/financify-dev/financify/internal/accounts"
	"github.com/financify-dev/financify/internal/model"
)

// Sheet names used by the export adapters. Import only ever reads the first
// sheet, so the reference sheets are invisible to a re-import.
const (
	SheetEntries   = "Transaksi"
	SheetChart     = "Daftar Akun"
	SheetTemplate  = "Template_Transaksi"
	SheetReference = "Referensi_Akun"
)

// TemplateFilename is the fixed name for the blank import template.
const TemplateFilename = "Template_Import_Financify.xlsx"

// EntriesFilename returns the dated filename for an entries export.
func EntriesFilename(now time.Time) string {
	return fmt.Sprintf("Laporan_Keuangan_Financify_%s.xlsx", now.Format(model.DateFormat))
}

// ExportEntries builds a workbook with all entries on the first sheet and
// the chart of accounts on a reference sheet. Account names are resolved
// through the catalog, falling back to its unknown-account sentinel. The
// column vocabulary matches what Parse reads, so the file round-trips.
func ExportEntries(entries []model.Entry, catalog *accounts.Service) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetEntries); err != nil {
		return nil, fmt.Errorf("naming entries sheet: %w", err)
	}

	header := []interface{}{"ID", "Tanggal", "ID Akun", "Nama Akun", "Tipe", "Jumlah", "Keterangan"}
	if err := setRow(f, SheetEntries, 1, header); err != nil {
		return nil, err
	}
	for i, e := range entries {
		row := []interface{}{e.ID, e.Date, e.AccountID, catalog.Name(e.AccountID), string(e.Direction), e.Amount, e.Description}
		if err := setRow(f, SheetEntries, i+2, row); err != nil {
			return nil, err
		}
	}

	if err := writeChartSheet(f, SheetChart, catalog, true); err != nil {
		return nil, err
	}
	return f, nil
}

// ExportTemplate builds the blank import template: one illustrative row the
// user is expected to delete, plus a catalog reference sheet.
func ExportTemplate(now time.Time, catalog *accounts.Service) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetTemplate); err != nil {
		return nil, fmt.Errorf("naming template sheet: %w", err)
	}

	header := []interface{}{"Tanggal", "ID Akun", "Tipe", "Jumlah", "Keterangan"}
	if err := setRow(f, SheetTemplate, 1, header); err != nil {
		return nil, err
	}
	example := []interface{}{now.Format(model.DateFormat), "1", "debit", 1000000, "Contoh Transaksi (Hapus baris ini)"}
	if err := setRow(f, SheetTemplate, 2, example); err != nil {
		return nil, err
	}

	widths := []float64{15, 10, 10, 15, 40}
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i+1, err)
		}
		if err := f.SetColWidth(SheetTemplate, col, col, w); err != nil {
			return nil, fmt.Errorf("setting column width: %w", err)
		}
	}

	if err := writeChartSheet(f, SheetReference, catalog, false); err != nil {
		return nil, err
	}
	return f, nil
}

// writeChartSheet dumps the chart of accounts onto a new sheet. The entries
// export includes the category column; the template reference omits it.
func writeChartSheet(f *excelize.File, sheet string, catalog *accounts.Service, withCategory bool) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet %q: %w", sheet, err)
	}

	header := []interface{}{"ID Akun", "Nama Akun", "Tipe"}
	if withCategory {
		header = append(header, "Kategori")
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}

	for i, a := range catalog.All() {
		row := []interface{}{a.ID, a.Name, string(a.Type)}
		if withCategory {
			row = append(row, string(a.Category))
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing %s row %d: %w", sheet, row, err)
	}
	return nil
}
