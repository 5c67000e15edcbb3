package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTopUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topup <amount>",
		Short: "Credit the account balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			c, err := newCore(cmd)
			if err != nil {
				return err
			}
			defer c.close()

			newBalance, err := c.balances.TopUp(cmd.Context(), amount)
			if err != nil {
				return c.renderErr(err, "top-up failed")
			}
			fmt.Printf("new balance: %.2f\n", newBalance)
			return nil
		},
	}
}

func newPurchaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purchase <silver|gold|diamond>",
		Short: "Buy or extend a paid status tier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tier, err := parseTier(args[0])
			if err != nil {
				return err
			}

			c, err := newCore(cmd)
			if err != nil {
				return err
			}
			defer c.close()

			receipt, err := c.balances.Purchase(cmd.Context(), tier)
			if err != nil {
				return c.renderErr(err, "purchase failed")
			}
			fmt.Printf("status %q active until %s, balance %.2f\n",
				receipt.Status, receipt.StatusDateEnd, receipt.RemainingBalance)
			return nil
		},
	}
}

func newHistoryCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the balance operation history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCore(cmd)
			if err != nil {
				return err
			}
			defer c.close()

			h := c.balances.History
			if all {
				// A fresh process starts in recent mode; one toggle
				// lands on the full listing and loads it.
				err = h.Toggle(cmd.Context())
			} else {
				err = h.Load(cmd.Context())
			}
			if err != nil {
				return c.renderErr(err, "failed to load history")
			}

			entries := h.Entries()
			if len(entries) == 0 {
				fmt.Println("no records")
				return nil
			}
			for _, e := range entries {
				fmt.Printf("%s  %+9.2f  %s\n", e.Timestamp, e.Amount, e.Description)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "show the full history instead of the recent window")
	return cmd
}
