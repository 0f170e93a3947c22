package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "energy-atlas",
		Short: "Daily energy balance reports",
	}

	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newProfilesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
