package extraction

import (
	"regexp"
	"strings"

	"ocextract/pkg/models"
)

// extractOrderNumber returns the first digit run following the order
// label, or "" when the label is absent. Only the first occurrence is
// used; later occurrences are ignored.
func (p *patterns) extractOrderNumber(text string) string {
	m := p.orderNumber.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

// extractDate returns the first DD/MM/YYYY-shaped substring. Calendar
// validity is not checked.
func (p *patterns) extractDate(text string) string {
	return p.date.FindString(text)
}

// supplierBlock isolates the span starting at the supplier label and
// ending just before the contact label or the item-table header,
// whichever comes first. When no bounded block exists, the whole text is
// searched instead.
func (p *patterns) supplierBlock(text string) string {
	start := p.supplierLabel.FindStringIndex(text)
	if start == nil {
		return text
	}
	rest := text[start[0]:]
	labelEnd := start[1] - start[0]

	end := -1
	for _, boundary := range []*regexp.Regexp{p.contactLabel, p.tableHeader} {
		if loc := boundary.FindStringIndex(rest[labelEnd:]); loc != nil {
			pos := labelEnd + loc[0]
			if end == -1 || pos < end {
				end = pos
			}
		}
	}
	if end == -1 {
		return text
	}
	return rest[:end]
}

func (p *patterns) extractSupplier(text string) models.Supplier {
	block := p.supplierBlock(text)

	var supplier models.Supplier
	if m := p.supplierName.FindStringSubmatch(block); m != nil {
		name := strings.TrimSpace(m[1])
		// The name capture can over-match into adjacent fields; strip any
		// trailing phone/fax fragment it swallowed.
		supplier.Name = strings.TrimSpace(p.nameTrailing.ReplaceAllString(name, ""))
	}
	if m := p.contact.FindStringSubmatch(block); m != nil {
		supplier.Contact = strings.TrimSpace(m[1])
	}
	if m := p.phone.FindStringSubmatch(block); m != nil {
		supplier.Phone = strings.TrimSpace(m[1])
	}
	return supplier
}

// extractPayment captures the payment condition and freight terms, each
// scoped to its own line. Either may be absent.
func (p *patterns) extractPayment(text string) models.Payment {
	var payment models.Payment
	if m := p.condition.FindStringSubmatch(text); m != nil {
		payment.Condition = strings.TrimSpace(m[1])
	}
	if m := p.freight.FindStringSubmatch(text); m != nil {
		payment.Freight = strings.TrimSpace(m[1])
	}
	return payment
}

// extractDocumentTotal returns the numeric value following the total
// label, or nil when the label is absent.
func (p *patterns) extractDocumentTotal(text string) *float64 {
	m := p.total.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	value := ParseBRLNumber(m[1])
	return &value
}
