package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"ocextract/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "ocextract",
	Short: "ocextract - structured data extraction from purchase-order text",
	Long: `ocextract reads the plain text of a purchase order (already decoded
from a PDF, scanned image, HTML page, or text file) and produces a
structured record: order metadata, supplier info, the line-item table,
payment terms, totals and a confidence score. The record can then be
checked for internal consistency and exported in several formats.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.WithComponent("root")
		log.Info().
			Str("version", version).
			Msg("ocextract executed")

		fmt.Println("Welcome to ocextract!")
		fmt.Println("Use --help to see available commands and options.")
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}
