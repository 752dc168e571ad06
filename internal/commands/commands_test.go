package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/financify-dev/financify/internal/commands"
	"github.com/financify-dev/financify/internal/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestInit_SeedsProject(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "init", dir, "--name", "Warung Maju")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized Financify project")
	assert.Contains(t, out, "7 entries")

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "Warung Maju", cfg.Business.Name)

	_, err = os.Stat(filepath.Join(dir, cfg.Data.File))
	require.NoError(t, err)
}

func TestAddAndList(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "init", dir, "--name", "Test Biz")
	require.NoError(t, err)

	out, err := run(t, "add", "--dir", dir,
		"--date", "2024-09-01", "--account", "1", "--type", "debit",
		"--amount", "750000", "--desc", "Penjualan tunai")
	require.NoError(t, err)
	assert.Contains(t, out, "Recorded entry 8", "id continues after the 7 seeded entries")
	assert.Contains(t, out, "Kas")

	out, err = run(t, "list", "--dir", dir, "--search", "tunai")
	require.NoError(t, err)
	assert.Contains(t, out, "Penjualan tunai")
	assert.Contains(t, out, "1 of 8 entries")
}

func TestAdd_RejectsBadDirection(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "init", dir, "--name", "Test Biz")
	require.NoError(t, err)

	_, err = run(t, "add", "--dir", dir,
		"--date", "2024-09-01", "--account", "1", "--type", "transfer",
		"--amount", "1000", "--desc", "bad")
	require.Error(t, err)
}

func TestReport_SeededData(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "init", dir, "--name", "Test Biz")
	require.NoError(t, err)

	out, err := run(t, "report", "--dir", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "BALANCE SHEET")
	assert.Contains(t, out, "INCOME STATEMENT")
	assert.Contains(t, out, "Modal Pemilik")
	// Seed data: revenue 40,000,000 − expenses 14,200,000.
	assert.Contains(t, out, "Rp25.800.000")
	assert.Contains(t, out, "Balance check: unbalanced")
}

func TestAccounts(t *testing.T) {
	out, err := run(t, "accounts")
	require.NoError(t, err)
	assert.Contains(t, out, "Kas")
	assert.Contains(t, out, "Beban Listrik")
	assert.Contains(t, out, "operating_expense")
}

func TestTemplateExportImport(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "init", dir, "--name", "Test Biz")
	require.NoError(t, err)

	out, err := run(t, "template", "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Template_Import_Financify.xlsx")

	// The template's example row imports as one entry.
	templatePath := filepath.Join(dir, "Template_Import_Financify.xlsx")
	out, err = run(t, "import", "--dir", dir, templatePath)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 entries (ids 8-8)")

	// Export everything and re-import: candidates continue the sequence.
	out, err = run(t, "export", "--dir", dir, "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 8 entries")

	matches, err := filepath.Glob(filepath.Join(dir, "Laporan_Keuangan_Financify_*.xlsx"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	out, err = run(t, "import", "--dir", dir, matches[0])
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 8 entries (ids 9-16)")
}

func TestImport_NoValidRows(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "init", dir, "--name", "Test Biz")
	require.NoError(t, err)

	f := excelize.NewFile()
	header := []interface{}{"Tanggal", "ID Akun", "Tipe", "Jumlah", "Keterangan"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	row := []interface{}{"2024-02-01", "1", "Tunai", 10000, "Cash"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &row))
	path := filepath.Join(dir, "bad.xlsx")
	require.NoError(t, f.SaveAs(path))

	out, err := run(t, "import", "--dir", dir, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no valid rows")
	assert.Contains(t, out, "row 2 skipped")

	// Nothing was merged.
	listOut, err := run(t, "list", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, listOut, "7 of 7 entries")
}

func TestImport_UnreadableFile(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "init", dir, "--name", "Test Biz")
	require.NoError(t, err)

	path := filepath.Join(dir, "corrupt.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0o644))

	_, err = run(t, "import", "--dir", dir, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not read file")
}
