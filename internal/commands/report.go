package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/financify-dev/financify/internal/currency"
	"github.com/financify-dev/financify/internal/model"
	"github.com/financify-dev/financify/internal/report"
)

func newReportCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the balance sheet and income statement",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(*dir)
			if err != nil {
				return err
			}
			defer s.Close()

			r := report.Build(s.ledger.All(), s.catalog.All())
			return printReport(cmd.OutOrStdout(), s.cfg.Business.Name, s.cfg.Currency, r)
		},
	}
	return cmd
}

func printReport(out io.Writer, business, code string, r model.FinancialReport) error {
	fmt.Fprintf(out, "Financial report for %s\n\n", business)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(w, "BALANCE SHEET\t\t")
	printGroup(w, code, "Assets", r.Assets, r.TotalAssets)
	printGroup(w, code, "Liabilities", r.Liabilities, r.TotalLiabilities)
	printGroup(w, code, "Equity", r.Equity, r.TotalEquity)
	fmt.Fprintf(w, "  Current Period Earnings\t%s\t\n", currency.Format(r.NetIncome, code))
	fmt.Fprintf(w, "TOTAL LIABILITIES & EQUITY\t%s\t\n", currency.Format(r.TotalLiabilities+r.TotalEquity+r.NetIncome, code))

	fmt.Fprintln(w, "\t\t")
	fmt.Fprintln(w, "INCOME STATEMENT\t\t")
	printGroup(w, code, "Revenue", r.Revenue, r.TotalRevenue)
	printGroup(w, code, "Expenses", r.Expenses, r.TotalExpenses)
	fmt.Fprintf(w, "NET INCOME\t%s\t\n", currency.Format(r.NetIncome, code))

	if err := w.Flush(); err != nil {
		return err
	}

	// Display hint only: single-leg entries do not guarantee the accounting
	// equation, so an unbalanced report is not an error.
	if report.Balanced(r) {
		fmt.Fprintln(out, "\nBalance check: OK")
	} else {
		fmt.Fprintf(out, "\nBalance check: unbalanced (gap %s)\n", currency.Format(report.EquationGap(r), code))
	}
	return nil
}

func printGroup(w io.Writer, code, label string, balances []model.AccountBalance, total int64) {
	fmt.Fprintf(w, "%s\t\t\n", label)
	for _, b := range balances {
		fmt.Fprintf(w, "  %s\t%s\t\n", b.AccountName, currency.Format(b.Balance, code))
	}
	fmt.Fprintf(w, "Total %s\t%s\t\n", label, currency.Format(total, code))
}
