package ledger

import (
	"time"

	"github.com/financify-dev/financify/internal/model"
)

// SampleEntries is the demonstration dataset seeded into an empty store on
// first run.
func SampleEntries(now time.Time) []model.Entry {
	return []model.Entry{
		{ID: 1, Date: "2024-01-01", AccountID: "8", Direction: model.Credit, Amount: 50000000, Description: "Setoran modal awal", RecordedAt: now},
		{ID: 2, Date: "2024-01-02", AccountID: "5", Direction: model.Debit, Amount: 15000000, Description: "Beli peralatan kantor", RecordedAt: now},
		{ID: 3, Date: "2024-01-05", AccountID: "9", Direction: model.Credit, Amount: 25000000, Description: "Penjualan produk", RecordedAt: now},
		{ID: 4, Date: "2024-01-10", AccountID: "10", Direction: model.Debit, Amount: 8000000, Description: "Gaji karyawan", RecordedAt: now},
		{ID: 5, Date: "2024-01-15", AccountID: "11", Direction: model.Debit, Amount: 5000000, Description: "Beban sewa kantor", RecordedAt: now},
		{ID: 6, Date: "2024-01-20", AccountID: "9", Direction: model.Credit, Amount: 15000000, Description: "Penjualan jasa", RecordedAt: now},
		{ID: 7, Date: "2024-01-25", AccountID: "12", Direction: model.Debit, Amount: 1200000, Description: "Beban listrik", RecordedAt: now},
	}
}
