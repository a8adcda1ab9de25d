package cmd

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/tripbudget/backend/internal/currency"
)

var convertCmd = &cobra.Command{
	Use:   "convert <amount> <from> <to>",
	Short: "Convert an amount between currencies",
	Args:  cobra.ExactArgs(3),
	RunE:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	amount, err := decimal.NewFromString(args[0])
	if err != nil {
		return fmt.Errorf("%q is not a valid amount", args[0])
	}

	from := currency.Normalize(args[1])
	to := currency.Normalize(args[2])
	for _, code := range []string{from, to} {
		if err := currency.Validate(code); err != nil {
			return err
		}
	}

	src, closeSource, err := source()
	if err != nil {
		return err
	}
	defer closeSource()

	table := src.Get(context.Background(), to)

	converted, err := currency.ConvertChecked(amount, from, to, table.Rates)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", currency.Format(amount, from), currency.Format(converted, to))
	return nil
}
