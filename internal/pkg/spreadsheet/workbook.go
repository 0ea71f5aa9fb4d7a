// internal/pkg/spreadsheet/workbook.go
package spreadsheet

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/phone-inventory/internal/core/domain"
)

// ContentType is the MIME type of an xlsx workbook
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet names
const (
	InventorySheet = "Inventory"
	SummarySheet   = "Summary"
)

const dateTimeLayout = "2006-01-02 15:04:05"

// InventoryHeaders are the column titles of the inventory sheet
var InventoryHeaders = []string{
	"ID", "Name", "Brand", "Price", "Cost Price", "Quantity", "Stock Value",
	"Status", "Color", "Storage", "RAM", "IMEI", "Created At", "Updated At",
}

// Filename returns the download name of an export generated at t
func Filename(t time.Time) string {
	return fmt.Sprintf("inventory_export_%s.xlsx", t.UTC().Format("20060102_150405"))
}

// WriteInventory renders phones and their summary into an xlsx workbook
func WriteInventory(phones []domain.Phone, summary domain.InventorySummary, generatedAt time.Time) ([]byte, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet(InventorySheet)
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	addHeaderRow(sheet, InventoryHeaders)
	for i := range phones {
		addPhoneRow(sheet, &phones[i])
	}
	for i := range InventoryHeaders {
		sheet.SetColWidth(i+1, i+1, 15)
	}

	if err := addSummarySheet(file, summary, generatedAt); err != nil {
		return nil, err
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write Excel file to buffer: %w", err)
	}

	return buffer.Bytes(), nil
}

func addHeaderRow(sheet *xlsx.Sheet, headers []string) {
	row := sheet.AddRow()
	for _, header := range headers {
		cell := row.AddCell()
		cell.Value = header
		style := cell.GetStyle()
		style.Font.Bold = true
		style.Fill.PatternType = "solid"
		style.Fill.FgColor = "CCCCCC"
	}
}

func addPhoneRow(sheet *xlsx.Sheet, p *domain.Phone) {
	row := sheet.AddRow()

	row.AddCell().Value = p.ID.String()
	row.AddCell().Value = p.Name
	row.AddCell().Value = p.Brand
	row.AddCell().SetFloat(p.Price)
	if p.CostPrice != nil {
		row.AddCell().SetFloat(*p.CostPrice)
	} else {
		row.AddCell().Value = ""
	}
	row.AddCell().SetInt(p.Quantity)
	row.AddCell().SetFloat(p.StockValue())
	row.AddCell().Value = string(p.Status)
	row.AddCell().Value = p.Color
	row.AddCell().Value = p.Storage
	row.AddCell().Value = p.RAM
	row.AddCell().Value = strings.Join(p.IMEIList, ", ")
	row.AddCell().Value = p.CreatedAt.UTC().Format(dateTimeLayout)
	row.AddCell().Value = p.UpdatedAt.UTC().Format(dateTimeLayout)
}

func addSummarySheet(file *xlsx.File, s domain.InventorySummary, generatedAt time.Time) error {
	sheet, err := file.AddSheet(SummarySheet)
	if err != nil {
		return fmt.Errorf("failed to add summary worksheet: %w", err)
	}

	addHeaderRow(sheet, []string{"Metric", "Value"})

	metric := func(name string, set func(*xlsx.Cell)) {
		row := sheet.AddRow()
		row.AddCell().Value = name
		set(row.AddCell())
	}
	integer := func(v int64) func(*xlsx.Cell) {
		return func(c *xlsx.Cell) { c.SetInt64(v) }
	}
	float := func(v float64) func(*xlsx.Cell) {
		return func(c *xlsx.Cell) { c.SetFloat(v) }
	}

	metric("Generated At", func(c *xlsx.Cell) { c.Value = generatedAt.UTC().Format(dateTimeLayout) })
	metric("Total Products", integer(s.TotalProducts))
	metric("Total Quantity", integer(s.TotalQuantity))
	metric("Total Value", float(s.TotalValue))
	metric("Total Cost", float(s.TotalCost))
	metric("Potential Profit", float(s.PotentialProfit))
	metric("In Stock", integer(s.StockStatus.InStock))
	metric("Low Stock", integer(s.StockStatus.LowStock))
	metric("Out of Stock", integer(s.StockStatus.OutOfStock))

	sheet.SetColWidth(1, 2, 20)
	return nil
}
