// Package export renders an extracted purchase-order record into the
// supported interchange formats. Every projection is deterministic and
// lossy in the same way: it carries the record field set, never the
// source text.
package export

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"strconv"
	"strings"

	"ocextract/pkg/models"
)

// csvHeaders repeat the order-level fields on every item row so the file
// is usable without a second lookup table.
var csvHeaders = []string{
	"orderNumber", "date", "supplierName",
	"itemCode", "itemDescription", "itemQuantity", "itemUnit",
	"itemUnitPrice", "itemIpi", "itemTotal", "itemDeliveryDate",
}

// CSV renders one row per item. An order without items renders to an
// empty string.
func CSV(order *models.ExtractedOrder) (string, error) {
	if order == nil || len(order.Items) == 0 {
		return "", nil
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(csvHeaders); err != nil {
		return "", err
	}
	for _, item := range order.Items {
		row := []string{
			order.OrderNumber,
			order.Date,
			order.Supplier.Name,
			item.Code,
			item.Description,
			formatNumber(item.Quantity),
			item.Unit,
			formatNumber(item.UnitPrice),
			formatNumber(item.IPI),
			formatNumber(item.Total),
			item.DeliveryDate,
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	return sb.String(), w.Error()
}

// JSON renders the full record as indented JSON.
func JSON(order *models.ExtractedOrder) ([]byte, error) {
	return json.MarshalIndent(order, "", "  ")
}

type xmlSupplier struct {
	Name    string `xml:"name,omitempty"`
	Contact string `xml:"contact,omitempty"`
	Phone   string `xml:"phone,omitempty"`
}

type xmlBuyer struct {
	Company string `xml:"company"`
	CNPJ    string `xml:"cnpj"`
	Address string `xml:"address"`
	City    string `xml:"city"`
	Phone   string `xml:"phone,omitempty"`
}

type xmlPayment struct {
	Condition string `xml:"condition,omitempty"`
	Freight   string `xml:"freight,omitempty"`
}

type xmlItem struct {
	Code         string  `xml:"code"`
	Description  string  `xml:"description"`
	Quantity     float64 `xml:"quantity"`
	Unit         string  `xml:"unit"`
	UnitPrice    float64 `xml:"unitPrice"`
	IPI          float64 `xml:"ipi"`
	Total        float64 `xml:"total"`
	DeliveryDate string  `xml:"deliveryDate"`
}

type xmlTotals struct {
	TotalQuantity       float64  `xml:"totalQuantity"`
	TotalValue          float64  `xml:"totalValue"`
	ItemCount           int      `xml:"itemCount"`
	DocumentTotal       *float64 `xml:"documentTotal,omitempty"`
	TotalValueFormatted string   `xml:"totalValueFormatted"`
}

type xmlPurchaseOrder struct {
	XMLName     xml.Name    `xml:"PurchaseOrder"`
	OrderNumber string      `xml:"orderNumber"`
	Date        string      `xml:"date"`
	Supplier    xmlSupplier `xml:"Supplier"`
	Buyer       xmlBuyer    `xml:"Buyer"`
	Payment     xmlPayment  `xml:"Payment"`
	Items       []xmlItem   `xml:"Items>Item"`
	Totals      xmlTotals   `xml:"Totals"`
}

// XML renders the record as a <PurchaseOrder> document.
func XML(order *models.ExtractedOrder) ([]byte, error) {
	doc := xmlPurchaseOrder{
		OrderNumber: order.OrderNumber,
		Date:        order.Date,
		Supplier: xmlSupplier{
			Name:    order.Supplier.Name,
			Contact: order.Supplier.Contact,
			Phone:   order.Supplier.Phone,
		},
		Buyer: xmlBuyer{
			Company: order.Buyer.Company,
			CNPJ:    order.Buyer.CNPJ,
			Address: order.Buyer.Address,
			City:    order.Buyer.City,
			Phone:   order.Buyer.Phone,
		},
		Payment: xmlPayment{
			Condition: order.Payment.Condition,
			Freight:   order.Payment.Freight,
		},
		Totals: xmlTotals{
			TotalQuantity:       order.Totals.TotalQuantity,
			TotalValue:          order.Totals.TotalValue,
			ItemCount:           order.Totals.ItemCount,
			DocumentTotal:       order.Totals.DocumentTotal,
			TotalValueFormatted: order.Totals.TotalValueFormatted,
		},
	}
	for _, item := range order.Items {
		doc.Items = append(doc.Items, xmlItem{
			Code:         item.Code,
			Description:  item.Description,
			Quantity:     item.Quantity,
			Unit:         item.Unit,
			UnitPrice:    item.UnitPrice,
			IPI:          item.IPI,
			Total:        item.Total,
			DeliveryDate: item.DeliveryDate,
		})
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
