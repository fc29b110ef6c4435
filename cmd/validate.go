package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ocextract/internal/config"
	"ocextract/internal/logger"
	"ocextract/internal/validation"
	"ocextract/pkg/models"
)

var validateCmd = &cobra.Command{
	Use:   "validate [record-file]",
	Short: "Run consistency validation over a saved extraction record",
	Long: `Load an extracted purchase-order record from a JSON file (as produced
by "ocextract extract") and re-run the consistency rules over it.

The result separates blocking errors (missing order number, empty item
list) from non-blocking warnings (item-sum vs document-total mismatch,
malformed buyer CNPJ). Validation never alters the record.`,
	Example: `  # Validate a stored record
  ocextract validate order.json

  # Save the validation report
  ocextract validate order.json -o report.json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("validate")

	outputPath, _ := cmd.Flags().GetString("output")
	recordPath := args[0]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	data, err := os.ReadFile(recordPath)
	if err != nil {
		log.Error().
			Err(err).
			Str("file", recordPath).
			Msg("Failed to read record file")
		return fmt.Errorf("failed to read record file: %w", err)
	}

	order, err := decodeRecord(data)
	if err != nil {
		log.Error().
			Err(err).
			Str("file", recordPath).
			Msg("Record file is not a valid extraction record")
		return fmt.Errorf("record file is not a valid extraction record: %w", err)
	}

	result := validation.Validate(order, cfg.ValidationOptions())

	log.Info().
		Bool("is_valid", result.IsValid).
		Int("errors", len(result.Errors)).
		Int("warnings", len(result.Warnings)).
		Msg("Validation completed")

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to create JSON output: %w", err)
	}
	return writeOutput(out, outputPath, log)
}

// decodeRecord accepts either a bare record or the extract command's
// wrapped output ({"order": ...}).
func decodeRecord(data []byte) (*models.ExtractedOrder, error) {
	var wrapped ExtractOutput
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Order != nil {
		return wrapped.Order, nil
	}

	var order models.ExtractedOrder
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
