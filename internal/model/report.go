package model

// AccountBalance is the derived debit/credit/balance triple for one catalog
// account. One exists per catalog account on every computation, including
// accounts with zero activity.
type AccountBalance struct {
	AccountID   string
	AccountName string
	AccountType AccountType
	Category    AccountCategory
	Debit       int64
	Credit      int64
	Balance     int64
}

// FinancialReport groups account balances by type and carries the summary
// totals. It is a pure view over the entry list at a point in time and is
// rebuilt from scratch on every computation.
type FinancialReport struct {
	Assets      []AccountBalance
	Liabilities []AccountBalance
	Equity      []AccountBalance
	Revenue     []AccountBalance
	Expenses    []AccountBalance

	TotalAssets      int64
	TotalLiabilities int64
	TotalEquity      int64
	TotalRevenue     int64
	TotalExpenses    int64
	NetIncome        int64
}
