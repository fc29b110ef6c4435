// Package validation cross-checks an extracted purchase-order record for
// internal consistency. It is a pure read-only pass: the record is never
// mutated and validation never fails, it only reports findings.
package validation

import (
	"fmt"
	"math"
	"regexp"

	"github.com/shopspring/decimal"

	"ocextract/pkg/models"
)

// Issue codes emitted by Validate. Consumers should branch on these
// rather than on message text.
const (
	CodeOrderNumberMissing = "order_number_missing"
	CodeNoItems            = "no_items"
	CodeTotalMismatch      = "total_mismatch"
	CodeInvalidCNPJ        = "invalid_cnpj"
)

// DefaultTotalTolerance is the absolute currency-unit tolerance allowed
// between the sum of item totals and the document total. It accounts for
// rounding, not for relative error.
const DefaultTotalTolerance = 1.0

// cnpjPattern is the fixed CNPJ shape DD.DDD.DDD/DDDD-DD.
var cnpjPattern = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`)

// Options tunes the validation rules.
type Options struct {
	// TotalTolerance is the maximum absolute difference tolerated
	// between the item-total sum and the document total before a
	// warning is raised.
	TotalTolerance float64
}

// DefaultOptions returns the standard rule settings.
func DefaultOptions() Options {
	return Options{TotalTolerance: DefaultTotalTolerance}
}

// Validate runs every consistency rule over the record and returns the
// collected findings. All rules are evaluated independently; none
// short-circuits another, and the rule order is fixed, so repeated calls
// on the same record yield identical results.
func Validate(order *models.ExtractedOrder, opts Options) models.ValidationResult {
	issues := []models.Issue{}

	if order.OrderNumber == "" {
		issues = append(issues, models.Issue{
			Kind:    models.IssueError,
			Code:    CodeOrderNumberMissing,
			Message: "Número da OC não identificado",
			Field:   "orderNumber",
		})
	}

	if len(order.Items) == 0 {
		issues = append(issues, models.Issue{
			Kind:    models.IssueError,
			Code:    CodeNoItems,
			Message: "Nenhum item encontrado no documento",
			Field:   "items",
		})
	}

	if order.Totals.DocumentTotal != nil {
		itemSum := sumItemTotals(order.Items)
		if math.Abs(itemSum-*order.Totals.DocumentTotal) > opts.TotalTolerance {
			issues = append(issues, models.Issue{
				Kind: models.IssueWarning,
				Code: CodeTotalMismatch,
				Message: fmt.Sprintf(
					"Soma dos itens (R$ %.2f) difere do total do documento (R$ %.2f)",
					itemSum, *order.Totals.DocumentTotal),
				Field: "totals",
			})
		}
	}

	if order.Buyer.CNPJ != "" && !cnpjPattern.MatchString(order.Buyer.CNPJ) {
		issues = append(issues, models.Issue{
			Kind:    models.IssueWarning,
			Code:    CodeInvalidCNPJ,
			Message: "CNPJ em formato inválido",
			Field:   "buyer.cnpj",
		})
	}

	return models.NewValidationResult(issues)
}

func sumItemTotals(items []models.Item) float64 {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(decimal.NewFromFloat(item.Total))
	}
	return sum.InexactFloat64()
}
