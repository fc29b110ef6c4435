package extraction

import (
	"github.com/shopspring/decimal"

	"ocextract/pkg/models"
)

// calculateTotals aggregates the parsed items and reconciles the result
// against the document-level total, when one was found. The printed
// document total is trusted over the sum of parsed rows: layout and OCR
// noise corrupts individual rows more often than the single total line.
func calculateTotals(items []models.Item, documentTotal *float64) models.Totals {
	quantity := decimal.Zero
	value := decimal.Zero
	for _, item := range items {
		quantity = quantity.Add(decimal.NewFromFloat(item.Quantity))
		value = value.Add(decimal.NewFromFloat(item.Total))
	}

	final := value.InexactFloat64()
	if documentTotal != nil {
		final = *documentTotal
	}

	return models.Totals{
		TotalQuantity:       quantity.InexactFloat64(),
		TotalValue:          final,
		ItemCount:           len(items),
		DocumentTotal:       documentTotal,
		TotalValueFormatted: FormatBRL(final),
	}
}
