package models

import "time"

// ExtractedOrder is the structured record produced by one extraction pass
// over a purchase-order document. It is assembled once and never mutated
// afterwards; validation only reads it.
type ExtractedOrder struct {
	// OrderNumber is the human-assigned identifier printed on the document.
	// Empty when the order-number label was not found in the text.
	OrderNumber string `json:"orderNumber,omitempty"`

	// Date is the issue date as printed (DD/MM/YYYY). Kept as text: the
	// engine verifies presence, not calendar validity.
	Date string `json:"date,omitempty"`

	Supplier Supplier `json:"supplier"`

	// Buyer is the purchasing organization profile. It comes from
	// configuration, not from the document.
	Buyer Buyer `json:"buyer"`

	// Items appear in document order. The sequence is the delivery
	// sequence and must be preserved.
	Items []Item `json:"items"`

	Payment  Payment  `json:"payment"`
	Totals   Totals   `json:"totals"`
	Metadata Metadata `json:"metadata"`
}

// Supplier holds the free-text supplier fields. Each field is
// independently optional; empty means the label was absent.
type Supplier struct {
	Name    string `json:"name,omitempty"`
	Contact string `json:"contact,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// Buyer is the static purchasing-organization profile.
type Buyer struct {
	Company string `json:"company"`
	CNPJ    string `json:"cnpj"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
}

// Payment holds the payment terms captured from the document.
type Payment struct {
	Condition string `json:"condition,omitempty"`
	Freight   string `json:"freight,omitempty"`
}

// Item is one parsed line of the item table.
type Item struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unitPrice"`
	IPI         float64 `json:"ipi"`
	// Total is the line total as printed on the document. It is an
	// independent field: the printed value is authoritative and is not
	// required to equal Quantity * UnitPrice.
	Total        float64 `json:"total"`
	DeliveryDate string  `json:"deliveryDate"`
}

// Totals aggregates the parsed items and reconciles them against the
// document-level total, when one was found.
type Totals struct {
	TotalQuantity float64 `json:"totalQuantity"`
	// TotalValue equals DocumentTotal when the document printed one,
	// otherwise the sum of item line totals.
	TotalValue float64 `json:"totalValue"`
	ItemCount  int     `json:"itemCount"`
	// DocumentTotal is nil when no total line was found in the text.
	DocumentTotal       *float64 `json:"documentTotal"`
	TotalValueFormatted string   `json:"totalValueFormatted"`
}

// Metadata describes how and when the record was produced.
type Metadata struct {
	ExtractionID   string    `json:"extractionId"`
	FileName       string    `json:"fileName"`
	ExtractionTime time.Time `json:"extractionTime"`
	// Confidence is a coverage heuristic in [0,1], not a probability.
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
	Method     string  `json:"method"`
}
