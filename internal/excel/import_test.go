package excel

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/financify-dev/financify/internal/model"
)

func buildWorkbook(t *testing.T, header []interface{}, rows ...[]interface{}) io.Reader {
	t.Helper()
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &rows[i]))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

var localizedHeader = []interface{}{"Tanggal", "ID Akun", "Tipe", "Jumlah", "Keterangan"}

func TestParse_AcceptsValidRow(t *testing.T) {
	r := buildWorkbook(t, localizedHeader,
		[]interface{}{"2024-02-01", "9", "credit", 500000, "Sale"},
	)

	candidates, skipped, err := Parse(r)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Empty(t, skipped)

	c := candidates[0]
	assert.Equal(t, "2024-02-01", c.Date)
	assert.Equal(t, "9", c.AccountID)
	assert.Equal(t, model.Credit, c.Direction)
	assert.Equal(t, int64(500000), c.Amount)
	assert.Equal(t, "Sale", c.Description)
}

func TestParse_CanonicalHeaders(t *testing.T) {
	r := buildWorkbook(t,
		[]interface{}{"date", "accountId", "direction", "amount", "description"},
		[]interface{}{"2024-03-10", "1", "debit", 250000, "Cash top-up"},
	)

	candidates, _, err := Parse(r)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "1", candidates[0].AccountID)
	assert.Equal(t, model.Debit, candidates[0].Direction)
}

func TestParse_AliasFallbackPerField(t *testing.T) {
	// Both header schemes present; the localized column is empty for the
	// date, so the canonical column supplies it.
	r := buildWorkbook(t,
		[]interface{}{"Tanggal", "date", "ID Akun", "Tipe", "Jumlah", "Keterangan"},
		[]interface{}{"", "2024-04-01", "2", "debit", 100000, "Bank deposit"},
	)

	candidates, _, err := Parse(r)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "2024-04-01", candidates[0].Date)
}

func TestParse_DropsInvalidRows(t *testing.T) {
	r := buildWorkbook(t, localizedHeader,
		[]interface{}{"2024-02-01", "9", "credit", 500000, ""},        // missing description
		[]interface{}{"2024-02-02", "1", "Tunai", 10000, "Cash"},      // unknown direction
		[]interface{}{"2024-02-03", "1", "debit", 0, "Zero"},          // falsy amount
		[]interface{}{"", "1", "debit", 10000, "No date"},             // missing date
		[]interface{}{"2024-02-05", "", "debit", 10000, "No account"}, // missing account id
		[]interface{}{"2024-02-06", "1", "debit", "abc", "Bad amt"},   // unparsable amount
		[]interface{}{"2024-02-07", "9", "CREDIT", 750000, "Kept"},    // direction is case-insensitive
	)

	candidates, skipped, err := Parse(r)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Kept", candidates[0].Description)
	assert.Equal(t, model.Credit, candidates[0].Direction)

	require.Len(t, skipped, 6)
	assert.Equal(t, 2, skipped[0].Row)
	assert.Contains(t, skipped[0].Reason, "description")
	assert.Contains(t, skipped[1].Reason, "direction")
	assert.Contains(t, skipped[2].Reason, "non-zero")
}

func TestParse_ZeroValidRowsIsNotAnError(t *testing.T) {
	r := buildWorkbook(t, localizedHeader,
		[]interface{}{"2024-02-01", "9", "maybe", 500000, "Sale"},
	)

	candidates, skipped, err := Parse(r)
	require.NoError(t, err, "empty result is the caller's failure, not the adapter's")
	assert.Empty(t, candidates)
	assert.Len(t, skipped, 1)
}

func TestParse_PreservesOrderAndDuplicates(t *testing.T) {
	dup := []interface{}{"2024-05-01", "9", "credit", 300000, "Repeat sale"}
	r := buildWorkbook(t, localizedHeader, dup, dup,
		[]interface{}{"2024-05-02", "10", "debit", 90000, "Wages"},
	)

	candidates, _, err := Parse(r)
	require.NoError(t, err)
	require.Len(t, candidates, 3)
	assert.Equal(t, candidates[0], candidates[1], "duplicates are kept")
	assert.Equal(t, "Wages", candidates[2].Description)
}

func TestParse_FirstSheetOnly(t *testing.T) {
	f := excelize.NewFile()
	header := localizedHeader
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	row := []interface{}{"2024-06-01", "1", "debit", 50000, "On first sheet"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &row))

	_, err := f.NewSheet("Other")
	require.NoError(t, err)
	other := []interface{}{"2024-06-02", "2", "debit", 99999, "On second sheet"}
	require.NoError(t, f.SetSheetRow("Other", "A1", &header))
	require.NoError(t, f.SetSheetRow("Other", "A2", &other))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	candidates, _, err := Parse(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "On first sheet", candidates[0].Description)
}

func TestParse_CorruptFile(t *testing.T) {
	_, _, err := Parse(strings.NewReader("this is not a workbook"))
	require.Error(t, err)
}
