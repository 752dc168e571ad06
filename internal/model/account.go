package model

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// DebitNormal reports whether increases to accounts of this type are
// recorded on the debit side.
func (t AccountType) DebitNormal() bool {
	return t == AccountTypeAsset || t == AccountTypeExpense
}

// AccountCategory is a finer classification used only for display grouping.
// Balance logic never consults it.
type AccountCategory string

const (
	CategoryCurrentAsset      AccountCategory = "current_asset"
	CategoryFixedAsset        AccountCategory = "fixed_asset"
	CategoryCurrentLiability  AccountCategory = "current_liability"
	CategoryLongTermLiability AccountCategory = "long_term_liability"
	CategoryCapital           AccountCategory = "capital"
	CategoryOperatingRevenue  AccountCategory = "operating_revenue"
	CategoryOperatingExpense  AccountCategory = "operating_expense"
)

// Account represents one row in the fixed chart of accounts.
type Account struct {
	ID       string
	Name     string
	Type     AccountType
	Category AccountCategory
}
