// Package report derives account balances and financial reports from an
// entry list. Every function here is a pure view over its inputs: nothing is
// cached or retained across calls, so callers can recompute on every change.
package report

import "github.com/financify-dev/financify/internal/model"

// Aggregate folds entries into one AccountBalance per catalog account, in
// catalog order. Accounts with zero activity are included with all-zero
// totals. Entries whose account id matches no catalog account are silently
// excluded. The result is independent of entry order.
func Aggregate(entries []model.Entry, catalog []model.Account) []model.AccountBalance {
	type totals struct {
		debit  int64
		credit int64
	}
	byAccount := make(map[string]*totals, len(catalog))
	for _, a := range catalog {
		byAccount[a.ID] = &totals{}
	}

	for _, e := range entries {
		t, ok := byAccount[e.AccountID]
		if !ok {
			continue
		}
		if e.Direction == model.Debit {
			t.debit += e.Amount
		} else {
			t.credit += e.Amount
		}
	}

	balances := make([]model.AccountBalance, 0, len(catalog))
	for _, a := range catalog {
		t := byAccount[a.ID]

		// Normal-balance rule: debit-normal accounts grow on the debit
		// side, the rest on the credit side.
		balance := t.credit - t.debit
		if a.Type.DebitNormal() {
			balance = t.debit - t.credit
		}

		balances = append(balances, model.AccountBalance{
			AccountID:   a.ID,
			AccountName: a.Name,
			AccountType: a.Type,
			Category:    a.Category,
			Debit:       t.debit,
			Credit:      t.credit,
			Balance:     balance,
		})
	}
	return balances
}

// Build aggregates entries against the catalog, partitions the balances by
// account type, and computes the five group totals plus net income. Calling
// it twice with the same entries yields identical output.
func Build(entries []model.Entry, catalog []model.Account) model.FinancialReport {
	balances := Aggregate(entries, catalog)

	var r model.FinancialReport
	for _, b := range balances {
		switch b.AccountType {
		case model.AccountTypeAsset:
			r.Assets = append(r.Assets, b)
			r.TotalAssets += b.Balance
		case model.AccountTypeLiability:
			r.Liabilities = append(r.Liabilities, b)
			r.TotalLiabilities += b.Balance
		case model.AccountTypeEquity:
			r.Equity = append(r.Equity, b)
			r.TotalEquity += b.Balance
		case model.AccountTypeRevenue:
			r.Revenue = append(r.Revenue, b)
			r.TotalRevenue += b.Balance
		case model.AccountTypeExpense:
			r.Expenses = append(r.Expenses, b)
			r.TotalExpenses += b.Balance
		}
	}

	r.NetIncome = r.TotalRevenue - r.TotalExpenses
	return r
}

// EquationGap returns assets minus (liabilities + equity + net income).
// Entries post to a single account, not a balanced debit/credit pair, so the
// accounting identity is not structurally guaranteed here; a nonzero gap is
// normal under this model.
func EquationGap(r model.FinancialReport) int64 {
	return r.TotalAssets - (r.TotalLiabilities + r.TotalEquity + r.NetIncome)
}

// Balanced reports whether the accounting equation holds for the report.
// This is a display hint, not an engine invariant.
func Balanced(r model.FinancialReport) bool {
	return EquationGap(r) == 0
}
