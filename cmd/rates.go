package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tripbudget/backend/internal/rates"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var ratesCmd = &cobra.Command{
	Use:   "rates <BASE>",
	Short: "Print the exchange rate table for a base currency",
	Args:  cobra.ExactArgs(1),
	RunE:  runRates,
}

var flagRefresh bool

func init() {
	ratesCmd.Flags().BoolVar(&flagRefresh, "refresh", false, "Bypass the cache and fetch the table from the provider")
	rootCmd.AddCommand(ratesCmd)
}

// source creates the exchange rate source configured in the environment.
func source() (*rates.Source, func(), error) {
	cfg, err := rates.ConfigFromEnv()
	if err != nil {
		return nil, func() {}, err
	}

	return rates.New(cfg)
}

func runRates(cmd *cobra.Command, args []string) error {
	src, closeSource, err := source()
	if err != nil {
		return err
	}
	defer closeSource()

	get := src.Get
	if flagRefresh {
		get = src.Refresh
	}
	table := get(context.Background(), args[0])

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Base: %s\n", table.Base)
	fmt.Fprintf(out, "Updated: %s\n", table.UpdatedAt.Format("2006-01-02 15:04 MST"))
	if table.Fallback {
		fmt.Fprintln(cmd.ErrOrStderr(), "  Exchange rate provider unavailable, showing built-in rates")
	}
	fmt.Fprintln(out)

	codes := maps.Keys(table.Rates)
	slices.Sort(codes)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, code := range codes {
		fmt.Fprintf(w, "%s\t%s\n", code, table.Rates[code].String())
	}

	return w.Flush()
}
