package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:     "nycast",
		Short:   "nycast — client for the NYC demand forecast service",
		Version: version,
	}

	root.PersistentFlags().String("config", "", "path to YAML config file")

	root.AddCommand(
		newServeCmd(),
		newLoginCmd(),
		newRegisterCmd(),
		newLogoutCmd(),
		newMeCmd(),
		newTopUpCmd(),
		newPurchaseCmd(),
		newHistoryCmd(),
		newPredictCmd(),
		newJobCmd(),
		newJobsCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
