package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/financify-dev/financify/internal/currency"
	"github.com/financify-dev/financify/internal/ledger"
	"github.com/financify-dev/financify/internal/model"
)

func newAddCommand(dir *string) *cobra.Command {
	var (
		date      string
		account   string
		direction string
		amount    int64
		desc      string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(*dir)
			if err != nil {
				return err
			}
			defer s.Close()

			if date == "" {
				date = time.Now().Format(model.DateFormat)
			}

			e, err := s.ledger.Add(ledger.AddParams{
				Date:        date,
				AccountID:   account,
				Direction:   model.Direction(strings.ToLower(direction)),
				Amount:      amount,
				Description: desc,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded entry %d: %s %s to %s on %s\n",
				e.ID, e.Direction, currency.Format(e.Amount, s.cfg.Currency), s.catalog.Name(e.AccountID), e.Date)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "entry date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&account, "account", "", "account id (required)")
	cmd.Flags().StringVar(&direction, "type", "", "debit or credit (required)")
	cmd.Flags().Int64Var(&amount, "amount", 0, "amount in whole currency units (required)")
	cmd.Flags().StringVar(&desc, "desc", "", "description (required)")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("desc")

	return cmd
}
