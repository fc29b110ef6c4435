package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"ocextract/pkg/models"
)

var xlsxHeaders = []string{
	"Order Number", "Date", "Supplier",
	"Code", "Description", "Quantity", "Unit",
	"Unit Price", "IPI", "Total", "Delivery Date",
}

// XLSX returns an XLSX workbook (as bytes) with one row per item and the
// order-level fields repeated on each row.
func XLSX(order *models.ExtractedOrder) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Items"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for i, h := range xlsxHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for r, item := range order.Items {
		values := []any{
			order.OrderNumber,
			order.Date,
			order.Supplier.Name,
			item.Code,
			item.Description,
			item.Quantity,
			item.Unit,
			item.UnitPrice,
			item.IPI,
			item.Total,
			item.DeliveryDate,
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
