// internal/pkg/spreadsheet/import.go
package spreadsheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/phone-inventory/internal/core/domain"
)

// Import column order
const (
	colName = iota
	colBrand
	colPrice
	colCostPrice
	colQuantity
	colColor
	colStorage
	colRAM
	colIMEI
)

// ImportRow is one parsed data row of an import sheet
type ImportRow struct {
	Line  int
	Input domain.CreatePhoneInput
	Err   error
}

// ReadPhonesFile parses the first sheet of the workbook at path
func ReadPhonesFile(path string) ([]ImportRow, error) {
	file, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	return readPhones(file)
}

// ReadPhones parses the first sheet of an in-memory workbook
func ReadPhones(data []byte) ([]ImportRow, error) {
	file, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel data: %w", err)
	}
	return readPhones(file)
}

func readPhones(file *xlsx.File) ([]ImportRow, error) {
	if len(file.Sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	var rows []ImportRow
	err := file.Sheets[0].ForEachRow(func(r *xlsx.Row) error {
		line := r.GetCoordinate() + 1
		// Skip header row
		if line == 1 {
			return nil
		}

		in, err := parseRow(r)
		if err == nil && in.Name == "" && in.Brand == "" && in.Price == nil {
			return nil
		}
		rows = append(rows, ImportRow{Line: line, Input: in, Err: err})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to process Excel rows: %w", err)
	}

	return rows, nil
}

func parseRow(r *xlsx.Row) (domain.CreatePhoneInput, error) {
	// Raw values keep numeric cells unformatted
	get := func(i int) string {
		c := r.GetCell(i)
		if c == nil {
			return ""
		}
		return strings.TrimSpace(c.Value)
	}

	in := domain.CreatePhoneInput{
		Name:    get(colName),
		Brand:   get(colBrand),
		Color:   get(colColor),
		Storage: get(colStorage),
		RAM:     get(colRAM),
	}

	var err error
	if in.Price, err = optionalFloat(get(colPrice)); err != nil {
		return in, fmt.Errorf("invalid price: %w", err)
	}
	if in.CostPrice, err = optionalFloat(get(colCostPrice)); err != nil {
		return in, fmt.Errorf("invalid costPrice: %w", err)
	}
	if in.Quantity, err = optionalInt(get(colQuantity)); err != nil {
		return in, fmt.Errorf("invalid quantity: %w", err)
	}

	if raw := get(colIMEI); raw != "" {
		for _, imei := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ';' }) {
			if imei = strings.TrimSpace(imei); imei != "" {
				in.IMEIList = append(in.IMEIList, imei)
			}
		}
	}

	return in, nil
}

func optionalFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func optionalInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	v := int(f)
	if float64(v) != f {
		return nil, fmt.Errorf("%q is not a whole number", s)
	}
	return &v, nil
}
