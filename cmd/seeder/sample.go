// cmd/seeder/sample.go
package main

import (
	"fmt"

	"github.com/ammerola/phone-inventory/internal/core/domain"
)

type catalogueModel struct {
	name    string
	brand   string
	price   float64
	storage string
	ram     string
}

var catalogue = []catalogueModel{
	{"iPhone 15 Pro", "Apple", 28_990_000, "256GB", "8GB"},
	{"iPhone 15", "Apple", 22_990_000, "128GB", "6GB"},
	{"iPhone 13", "Apple", 13_490_000, "128GB", "4GB"},
	{"Galaxy S24 Ultra", "Samsung", 33_990_000, "512GB", "12GB"},
	{"Galaxy A55", "Samsung", 9_990_000, "128GB", "8GB"},
	{"Galaxy A15", "Samsung", 4_490_000, "128GB", "6GB"},
	{"Redmi Note 13", "Xiaomi", 4_890_000, "128GB", "8GB"},
	{"Xiaomi 14", "Xiaomi", 19_990_000, "256GB", "12GB"},
	{"Pixel 8", "Google", 17_490_000, "128GB", "8GB"},
	{"Reno11 F", "OPPO", 8_990_000, "256GB", "8GB"},
	{"Redmi 13C", "Xiaomi", 2_990_000, "128GB", "4GB"},
	{"Nokia 105", "Nokia", 490_000, "", ""},
}

var colors = []string{"Black", "White", "Blue", "Titanium", "Green"}

// samplePhones returns count deterministic inputs cycling through the
// catalogue. Every seventh phone is sold out and every fifth is low on stock.
func samplePhones(count int) []domain.CreatePhoneInput {
	inputs := make([]domain.CreatePhoneInput, 0, count)
	for i := 0; i < count; i++ {
		m := catalogue[i%len(catalogue)]

		price := m.price
		cost := price * 0.88
		qty := 8 + (i*3)%25
		switch {
		case i%7 == 6:
			qty = 0
		case i%5 == 4:
			qty = 1 + i%5
		}

		var imeis []string
		for n := 0; n < qty && n < 3; n++ {
			imeis = append(imeis, fmt.Sprintf("35%06d%07d", i, n))
		}

		inputs = append(inputs, domain.CreatePhoneInput{
			Name:      m.name,
			Brand:     m.brand,
			Price:     &price,
			CostPrice: &cost,
			Quantity:  &qty,
			Color:     colors[i%len(colors)],
			Storage:   m.storage,
			RAM:       m.ram,
			IMEIList:  imeis,
		})
	}
	return inputs
}
