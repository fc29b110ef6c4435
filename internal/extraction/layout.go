package extraction

import (
	"fmt"
	"regexp"
)

// Layout holds the anchor strings that bound each region of the
// purchase-order document family this engine targets. Anchors are data,
// not literals embedded in parsing code, so a layout change does not
// touch parsing logic.
type Layout struct {
	OrderNumberLabel string
	SupplierLabel    string
	ContactLabel     string
	PhoneLabel       string
	FaxLabel         string
	ConditionLabel   string
	FreightLabel     string
	TotalLabel       string

	// TableHeader is a regex fragment matching the line that opens the
	// item table.
	TableHeader string

	// TableFooters are regex fragments; the first subsequent line
	// matching any of them ends the item table. When none matches, the
	// table extends to end of text.
	TableFooters []string
}

// DefaultLayout returns the anchors for the standard OC layout.
func DefaultLayout() Layout {
	return Layout{
		OrderNumberLabel: "ORDEM DE COMPRA:",
		SupplierLabel:    "Fornecedor:",
		ContactLabel:     "Contato:",
		PhoneLabel:       "Telefone:",
		FaxLabel:         "Fax:",
		ConditionLabel:   "Condição:",
		FreightLabel:     "Frete:",
		TotalLabel:       "TOTAL:",
		TableHeader:      `Codigo\s+Descrição`,
		TableFooters: []string{
			`Sr\.\s+Fornecedor`,
			`Para pagamentos à vista`,
			`FORMA PAGAMENTO`,
		},
	}
}

// itemRowExpr matches one well-formed item-table row. Columns, in order:
// integer code, description, quantity, 2-4 letter unit code, two numeric
// columns that are not retained in the output model, unit price, IPI,
// line total, delivery date.
const itemRowExpr = `^(\d+)\s+(.+?)\s+([\d.,]+)\s+([A-Z]{2,4})\s+[\d.,]+\s+[\d.,]+\s+([\d.,]+)\s+([\d.,]+)\s+([\d.,]+)\s+(\d{2}/\d{2}/\d{2,4})`

// patterns is the compiled form of a Layout.
type patterns struct {
	orderNumber    *regexp.Regexp
	date           *regexp.Regexp
	supplierLabel  *regexp.Regexp
	supplierName   *regexp.Regexp
	nameTrailing   *regexp.Regexp
	contactLabel   *regexp.Regexp
	contact        *regexp.Regexp
	phone          *regexp.Regexp
	condition      *regexp.Regexp
	freight        *regexp.Regexp
	total          *regexp.Regexp
	tableHeader    *regexp.Regexp
	tableFooters   []*regexp.Regexp
	itemRow        *regexp.Regexp
	descAnnotation *regexp.Regexp
}

func compileLayout(l Layout) (*patterns, error) {
	p := &patterns{}

	specs := []struct {
		dst  **regexp.Regexp
		expr string
	}{
		{&p.orderNumber, `(?i)` + regexp.QuoteMeta(l.OrderNumberLabel) + `\s*(?:N[º°]?)?\s*(\d+)`},
		{&p.date, `\d{2}/\d{2}/\d{4}`},
		{&p.supplierLabel, `(?i)` + regexp.QuoteMeta(l.SupplierLabel)},
		{&p.supplierName, `(?im)` + regexp.QuoteMeta(l.SupplierLabel) + `\s*(.*?)(?:\s*` +
			regexp.QuoteMeta(l.PhoneLabel) + `|\s*` + regexp.QuoteMeta(l.FaxLabel) + `|$)`},
		{&p.nameTrailing, `(?is)(?:` + regexp.QuoteMeta(l.PhoneLabel) + `|` + regexp.QuoteMeta(l.FaxLabel) + `).*$`},
		{&p.contactLabel, `(?i)` + regexp.QuoteMeta(l.ContactLabel)},
		{&p.contact, `(?i)` + regexp.QuoteMeta(l.ContactLabel) + `\s*([^\r\n]+)`},
		{&p.phone, `(?i)` + regexp.QuoteMeta(l.PhoneLabel) + `\s*([\d.\s-]+)`},
		{&p.condition, `(?i)` + regexp.QuoteMeta(l.ConditionLabel) + `\s*([^\r\n]+)`},
		{&p.freight, `(?i)` + regexp.QuoteMeta(l.FreightLabel) + `\s*([^\r\n]+)`},
		{&p.total, `(?i)` + regexp.QuoteMeta(l.TotalLabel) + `\s*([\d.,]+)`},
		{&p.tableHeader, `(?i)` + l.TableHeader},
		{&p.itemRow, `(?m)` + itemRowExpr},
		{&p.descAnnotation, `\s*=>:.*$`},
	}

	for _, s := range specs {
		re, err := regexp.Compile(s.expr)
		if err != nil {
			return nil, fmt.Errorf("compile layout pattern %q: %w", s.expr, err)
		}
		*s.dst = re
	}

	for _, footer := range l.TableFooters {
		re, err := regexp.Compile(`(?i)` + footer)
		if err != nil {
			return nil, fmt.Errorf("compile table footer %q: %w", footer, err)
		}
		p.tableFooters = append(p.tableFooters, re)
	}

	return p, nil
}
