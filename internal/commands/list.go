package commands

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/financify-dev/financify/internal/currency"
)

func newListCommand(dir *string) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(*dir)
			if err != nil {
				return err
			}
			defer s.Close()

			entries := s.ledger.All()
			sort.SliceStable(entries, func(i, j int) bool {
				return entries[i].Date > entries[j].Date
			})

			q := strings.ToLower(search)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tACCOUNT\tTYPE\tAMOUNT\tDESCRIPTION")
			shown := 0
			for _, e := range entries {
				name := s.catalog.Name(e.AccountID)
				if q != "" &&
					!strings.Contains(strings.ToLower(e.Description), q) &&
					!strings.Contains(strings.ToLower(name), q) {
					continue
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					e.ID, e.Date, name, e.Direction, currency.Format(e.Amount, s.cfg.Currency), e.Description)
				shown++
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d entries\n", shown, len(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "filter by description or account name")

	return cmd
}
