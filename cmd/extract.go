package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"ocextract/internal/config"
	"ocextract/internal/export"
	"ocextract/internal/extraction"
	"ocextract/internal/logger"
	"ocextract/internal/validation"
	"ocextract/pkg/models"
)

var extractCmd = &cobra.Command{
	Use:   "extract [text-file]",
	Short: "Extract a structured purchase-order record from document text",
	Long: `Read a plain-text file containing the decoded content of a purchase
order and extract a structured record from it: order number, issue date,
supplier block, line items, payment terms, totals and a confidence score.

The input must already be text. Converting a PDF, scanned image or HTML
page into text is a separate concern and is not handled here.

The buyer profile stamped into every record comes from configuration
(OC_BUYER_* environment variables), not from the document.`,
	Example: `  # Extract to stdout (JSON format)
  ocextract extract order.txt

  # Attach the validation report to the JSON output
  ocextract extract order.txt --validate

  # Keep the original document name in the record metadata
  ocextract extract order.txt --file-name "OC-4521.pdf"

  # Export one CSV row per item
  ocextract extract order.txt --format csv -o order.csv

  # Excel workbook or supplier confirmation message
  ocextract extract order.txt --format xlsx -o order.xlsx
  ocextract extract order.txt --format summary`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

// ExtractOutput is the JSON output structure of the extract command.
type ExtractOutput struct {
	Order      *models.ExtractedOrder   `json:"order"`
	Validation *models.ValidationResult `json:"validation,omitempty"`
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	extractCmd.Flags().String("file-name", "", "Original document name for the record metadata (default: input file name)")
	extractCmd.Flags().String("format", "json", "Output format: json, csv, xml, xlsx, summary")
	extractCmd.Flags().Bool("validate", false, "Run consistency validation and include the report in JSON output")
}

func runExtract(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("extract")

	outputPath, _ := cmd.Flags().GetString("output")
	fileName, _ := cmd.Flags().GetString("file-name")
	format, _ := cmd.Flags().GetString("format")
	withValidation, _ := cmd.Flags().GetBool("validate")

	inputPath := args[0]
	if fileName == "" {
		fileName = filepath.Base(inputPath)
	}

	log.Info().
		Str("file", inputPath).
		Str("format", format).
		Bool("validate", withValidation).
		Msg("Starting extraction")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	text, err := os.ReadFile(inputPath)
	if err != nil {
		log.Error().
			Err(err).
			Str("file", inputPath).
			Msg("Failed to read input file")
		return fmt.Errorf("failed to read input file: %w", err)
	}

	engine := extraction.NewEngine(cfg.Buyer())
	order, err := engine.Extract(string(text), fileName)
	if err != nil {
		return handleExtractionError(err, log)
	}

	log.Info().
		Str("order_number", order.OrderNumber).
		Str("supplier", order.Supplier.Name).
		Int("items", len(order.Items)).
		Msg("Extraction completed")

	var result *models.ValidationResult
	if withValidation {
		v := validation.Validate(order, cfg.ValidationOptions())
		result = &v
		log.Info().
			Bool("is_valid", v.IsValid).
			Int("errors", len(v.Errors)).
			Int("warnings", len(v.Warnings)).
			Msg("Validation completed")
	}

	data, err := renderOutput(order, result, format)
	if err != nil {
		return err
	}
	return writeOutput(data, outputPath, log)
}

// renderOutput projects the record into the requested format.
func renderOutput(order *models.ExtractedOrder, result *models.ValidationResult, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "json":
		return exportJSON(order, result)
	case "csv":
		s, err := export.CSV(order)
		if err != nil {
			return nil, fmt.Errorf("failed to render CSV: %w", err)
		}
		return []byte(s), nil
	case "xml":
		data, err := export.XML(order)
		if err != nil {
			return nil, fmt.Errorf("failed to render XML: %w", err)
		}
		return data, nil
	case "xlsx":
		data, err := export.XLSX(order)
		if err != nil {
			return nil, fmt.Errorf("failed to render XLSX: %w", err)
		}
		return data, nil
	case "summary":
		return []byte(export.Summary(order)), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (supported: json, csv, xml, xlsx, summary)", format)
	}
}

func exportJSON(order *models.ExtractedOrder, result *models.ValidationResult) ([]byte, error) {
	if result == nil {
		return export.JSON(order)
	}
	return json.MarshalIndent(ExtractOutput{Order: order, Validation: result}, "", "  ")
}

// handleExtractionError provides user-friendly messages for extraction failures.
func handleExtractionError(err error, log zerolog.Logger) error {
	log.Error().Err(err).Msg("Extraction failed")

	if errors.Is(err, extraction.ErrEmptyDocument) {
		return fmt.Errorf("o conteúdo do documento está vazio ou é muito curto para ser processado")
	}
	return fmt.Errorf("extraction failed: %w", err)
}

// writeOutput writes rendered output to a file or stdout.
func writeOutput(data []byte, outputPath string, log zerolog.Logger) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			log.Error().
				Err(err).
				Str("output_file", outputPath).
				Msg("Failed to write output file")
			return fmt.Errorf("failed to write output file: %w", err)
		}
		log.Info().
			Str("output_file", outputPath).
			Int("bytes", len(data)).
			Msg("Output written to file")
		return nil
	}

	if _, err := os.Stdout.Write(data); err != nil {
		log.Error().Err(err).Msg("Failed to write to stdout")
		return fmt.Errorf("failed to write output: %w", err)
	}
	// Trailing newline for terminal output
	fmt.Println()
	return nil
}
