package products

import (
	"encoding/json"
	"math"
	"strconv"
)

// Column positions within a product row. The sheet has no schema; this
// table is the contract every reader and writer goes through.
const (
	colID          = 0
	colName        = 1
	colDescription = 2
	colPrice       = 12
	colWeight      = 22
	colColors      = 30
	colSKU         = 31
	colHeight      = 32
	colLength      = 33
	colBreadth     = 34
)

// rowWidth is the number of cells an encoded product row carries.
const rowWidth = colBreadth + 1

// Price is a float64 whose NaN sentinel serializes as JSON null. Sheet
// rows may legitimately lack a price cell, and NaN itself has no JSON
// encoding.
type Price float64

func (p Price) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(p)) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(p))
}

func (p *Price) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*p = Price(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*p = Price(f)
	return nil
}

// Product is one row of the products sheet.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Price  `json:"price"`
	Colors      string `json:"colors"`
	SKU         string `json:"sku"`
	Height      string `json:"height"`
	Length      string `json:"length"`
	Breadth     string `json:"breadth"`
	Weight      string `json:"weight"`
}

// Decode maps a positional row onto a Product. Rows shorter than the full
// width are fine; missing trailing cells read as empty. An unparseable
// price decodes to NaN rather than failing the row.
func Decode(row []string) Product {
	return Product{
		ID:          cell(row, colID),
		Name:        cell(row, colName),
		Description: cell(row, colDescription),
		Price:       parsePrice(cell(row, colPrice)),
		Colors:      cell(row, colColors),
		SKU:         cell(row, colSKU),
		Height:      cell(row, colHeight),
		Length:      cell(row, colLength),
		Breadth:     cell(row, colBreadth),
		Weight:      cell(row, colWeight),
	}
}

// Encode produces the positional row for a Product, empty strings in every
// column the type does not cover.
func Encode(p Product) []string {
	row := make([]string, rowWidth)
	row[colID] = p.ID
	row[colName] = p.Name
	row[colDescription] = p.Description
	row[colPrice] = formatPrice(p.Price)
	row[colColors] = p.Colors
	row[colSKU] = p.SKU
	row[colHeight] = p.Height
	row[colLength] = p.Length
	row[colBreadth] = p.Breadth
	row[colWeight] = p.Weight
	return row
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func parsePrice(s string) Price {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Price(math.NaN())
	}
	return Price(f)
}

func formatPrice(p Price) string {
	if math.IsNaN(float64(p)) {
		return ""
	}
	return strconv.FormatFloat(float64(p), 'f', -1, 64)
}
