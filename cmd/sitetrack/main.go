package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "development"

var rootCmd = &cobra.Command{
	Use:   "sitetrack",
	Short: "sitetrack - construction site beacon tracking",
	Long: `sitetrack estimates worker beacon positions from distances to fixed
base stations and accounts for the time each beacon spends in range of them.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
