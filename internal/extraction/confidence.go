package extraction

import "ocextract/pkg/models"

// Criterion is one named, weighted coverage check evaluated against the
// assembled record. Changing the criteria or their weights is a data
// change, not a logic change.
type Criterion struct {
	Name   string
	Weight float64
	Met    func(order *models.ExtractedOrder) bool
}

// DefaultCriteria returns the six standard coverage criteria, each worth
// one point. The resulting score is a coverage heuristic over the
// expected document structure, not a probability estimate.
func DefaultCriteria() []Criterion {
	return []Criterion{
		{Name: "order_number", Weight: 1, Met: func(o *models.ExtractedOrder) bool {
			return o.OrderNumber != ""
		}},
		{Name: "date", Weight: 1, Met: func(o *models.ExtractedOrder) bool {
			return o.Date != ""
		}},
		{Name: "supplier_name", Weight: 1, Met: func(o *models.ExtractedOrder) bool {
			return o.Supplier.Name != ""
		}},
		{Name: "items", Weight: 1, Met: func(o *models.ExtractedOrder) bool {
			return len(o.Items) > 0
		}},
		{Name: "payment_condition", Weight: 1, Met: func(o *models.ExtractedOrder) bool {
			return o.Payment.Condition != ""
		}},
		{Name: "document_total", Weight: 1, Met: func(o *models.ExtractedOrder) bool {
			return o.Totals.DocumentTotal != nil && *o.Totals.DocumentTotal > 0
		}},
	}
}

// scoreConfidence returns the weighted share of satisfied criteria,
// normalized to [0,1].
func scoreConfidence(order *models.ExtractedOrder, criteria []Criterion) float64 {
	var total, met float64
	for _, c := range criteria {
		total += c.Weight
		if c.Met(order) {
			met += c.Weight
		}
	}
	if total == 0 {
		return 0
	}
	return met / total
}
