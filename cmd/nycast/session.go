package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Authenticate and store the session token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCore(cmd)
			if err != nil {
				return err
			}
			defer c.close()

			if err := c.sessions.Login(cmd.Context(), args[0], args[1]); err != nil {
				return c.renderErr(err, "login failed")
			}
			fmt.Println("logged in")
			return nil
		},
	}
}

func newRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <username> <password>",
		Short: "Create an account and store the session token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCore(cmd)
			if err != nil {
				return err
			}
			defer c.close()

			if err := c.sessions.Register(cmd.Context(), args[0], args[1]); err != nil {
				return c.renderErr(err, "registration failed")
			}
			fmt.Println("registered and logged in")
			return nil
		},
	}
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCore(cmd)
			if err != nil {
				return err
			}
			defer c.close()

			c.sessions.Clear()
			fmt.Println("logged out")
			return nil
		},
	}
}

func newMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the authenticated user and balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCore(cmd)
			if err != nil {
				return err
			}
			defer c.close()

			user, err := c.balances.Load(cmd.Context())
			if err != nil {
				return c.renderErr(err, "failed to fetch user")
			}

			fmt.Printf("user:    %s\n", user.Username)
			fmt.Printf("balance: %.2f\n", user.Balance)
			fmt.Printf("status:  %s", user.Status)
			if user.StatusDateEnd != "" {
				fmt.Printf(" (until %s)", user.StatusDateEnd)
			}
			fmt.Println()
			return nil
		},
	}
}
