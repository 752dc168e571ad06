package accounts

import "github.com/financify-dev/financify/internal/model"

// DefaultChart returns the built-in chart of accounts. The catalog is fixed:
// entries reference it by id but the set itself never changes at runtime.
func DefaultChart() []model.Account {
	return []model.Account{
		{ID: "1", Name: "Kas", Type: model.AccountTypeAsset, Category: model.CategoryCurrentAsset},
		{ID: "2", Name: "Bank", Type: model.AccountTypeAsset, Category: model.CategoryCurrentAsset},
		{ID: "3", Name: "Piutang Usaha", Type: model.AccountTypeAsset, Category: model.CategoryCurrentAsset},
		{ID: "4", Name: "Persediaan", Type: model.AccountTypeAsset, Category: model.CategoryCurrentAsset},
		{ID: "5", Name: "Peralatan", Type: model.AccountTypeAsset, Category: model.CategoryFixedAsset},
		{ID: "6", Name: "Hutang Usaha", Type: model.AccountTypeLiability, Category: model.CategoryCurrentLiability},
		{ID: "7", Name: "Hutang Bank", Type: model.AccountTypeLiability, Category: model.CategoryLongTermLiability},
		{ID: "8", Name: "Modal Pemilik", Type: model.AccountTypeEquity, Category: model.CategoryCapital},
		{ID: "9", Name: "Pendapatan Usaha", Type: model.AccountTypeRevenue, Category: model.CategoryOperatingRevenue},
		{ID: "10", Name: "Beban Gaji", Type: model.AccountTypeExpense, Category: model.CategoryOperatingExpense},
		{ID: "11", Name: "Beban Sewa", Type: model.AccountTypeExpense, Category: model.CategoryOperatingExpense},
		{ID: "12", Name: "Beban Listrik", Type: model.AccountTypeExpense, Category: model.CategoryOperatingExpense},
	}
}
