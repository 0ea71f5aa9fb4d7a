// internal/pkg/spreadsheet/spreadsheet_test.go
package spreadsheet_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/phone-inventory/internal/core/domain"
	"github.com/ammerola/phone-inventory/internal/pkg/spreadsheet"
)

func TestWriteInventory(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	cost := 15_000_000.0
	phones := []domain.Phone{
		{
			ID: "65a1b2c3d4e5f60718293a4b", Name: "iPhone 15", Brand: "Apple",
			Price: 20_000_000, CostPrice: &cost, Quantity: 3, Status: domain.StatusLowStock,
			IMEIList: []string{"356938035643809"}, CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "65a1b2c3d4e5f60718293a4c", Name: "Galaxy S24", Brand: "Samsung",
			Price: 18_000_000, Quantity: 10, Status: domain.StatusInStock,
			IMEIList: []string{}, CreatedAt: now, UpdatedAt: now,
		},
	}
	summary := domain.Summarize(phones)

	data, err := spreadsheet.WriteInventory(phones, summary, now)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	file, err := xlsx.OpenBinary(data)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 2)

	inventory := file.Sheet[spreadsheet.InventorySheet]
	require.NotNil(t, inventory)
	assert.Equal(t, len(phones)+1, inventory.MaxRow)

	header, err := inventory.Row(0)
	require.NoError(t, err)
	assert.Equal(t, "ID", header.GetCell(0).Value)
	assert.Equal(t, "Updated At", header.GetCell(len(spreadsheet.InventoryHeaders)-1).Value)

	first, err := inventory.Row(1)
	require.NoError(t, err)
	assert.Equal(t, "iPhone 15", first.GetCell(1).Value)
	assert.Equal(t, "low_stock", first.GetCell(7).Value)

	value, err := first.GetCell(6).Float()
	require.NoError(t, err)
	assert.Equal(t, 60_000_000.0, value)

	summarySheet := file.Sheet[spreadsheet.SummarySheet]
	require.NotNil(t, summarySheet)
	products, err := summarySheet.Row(2)
	require.NoError(t, err)
	assert.Equal(t, "Total Products", products.GetCell(0).Value)
	n, err := products.GetCell(1).Int()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestWriteInventory_Empty(t *testing.T) {
	data, err := spreadsheet.WriteInventory(nil, domain.InventorySummary{}, time.Now())
	require.NoError(t, err)

	file, err := xlsx.OpenBinary(data)
	require.NoError(t, err)
	assert.Equal(t, 1, file.Sheet[spreadsheet.InventorySheet].MaxRow)
}

func TestFilename(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 4, 5, 0, time.UTC)
	assert.Equal(t, "inventory_export_20240501_100405.xlsx", spreadsheet.Filename(at))
}

func buildWorkbook(t *testing.T, rows [][]string) []byte {
	t.Helper()
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Phones")
	require.NoError(t, err)

	for _, values := range rows {
		row := sheet.AddRow()
		for _, v := range values {
			row.AddCell().Value = v
		}
	}

	var buf bytes.Buffer
	require.NoError(t, file.Write(&buf))
	return buf.Bytes()
}

func TestReadPhones(t *testing.T) {
	data := buildWorkbook(t, [][]string{
		{"name", "brand", "price", "costPrice", "quantity", "color", "storage", "ram", "imei"},
		{"iPhone 15", "Apple", "20000000", "15000000", "3", "Black", "128GB", "6GB", "111; 222"},
		{"", "", "", "", "", "", "", "", ""},
		{"Galaxy S24", "Samsung", "abc", "", "1", "", "", "", ""},
		{"Pixel 8", "Google", "12000000", "", "2.5", "", "", "", ""},
		{"Nokia 3310", "Nokia", "500000", "", "", "", "", "", ""},
	})

	rows, err := spreadsheet.ReadPhones(data)
	require.NoError(t, err)
	require.Len(t, rows, 4, "blank rows are skipped")

	first := rows[0]
	require.NoError(t, first.Err)
	assert.Equal(t, 2, first.Line)
	assert.Equal(t, "iPhone 15", first.Input.Name)
	assert.Equal(t, 20_000_000.0, *first.Input.Price)
	assert.Equal(t, 15_000_000.0, *first.Input.CostPrice)
	assert.Equal(t, 3, *first.Input.Quantity)
	assert.Equal(t, []string{"111", "222"}, first.Input.IMEIList)

	assert.Equal(t, 4, rows[1].Line)
	assert.ErrorContains(t, rows[1].Err, "invalid price")
	assert.ErrorContains(t, rows[2].Err, "invalid quantity")

	require.NoError(t, rows[3].Err)
	assert.Nil(t, rows[3].Input.Quantity, "missing quantity is left to validation")
}

func TestReadPhones_InvalidData(t *testing.T) {
	_, err := spreadsheet.ReadPhones([]byte("not a workbook"))
	assert.Error(t, err)
}
