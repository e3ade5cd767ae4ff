package products

import (
	"context"
	"fmt"

	"github.com/shivamsutar1233/WhatsForm-Backend/internal/sheets"
)

// Data rows start at row 3; the first two rows are header/meta rows
// maintained by hand in the sheet.
const readRange = "Sheet1!A3:AI"

// Store reads products from the products spreadsheet. Products are managed
// outside this system, so there are no write operations.
type Store struct {
	client        sheets.ValuesAPI
	spreadsheetID string
}

// NewStore returns a Store bound to the products spreadsheet.
func NewStore(client sheets.ValuesAPI, spreadsheetID string) *Store {
	return &Store{client: client, spreadsheetID: spreadsheetID}
}

// List returns every product row, decoded.
func (s *Store) List(ctx context.Context) ([]Product, error) {
	rows, err := s.client.GetValues(ctx, s.spreadsheetID, readRange)
	if err != nil {
		return nil, fmt.Errorf("read products: %w", err)
	}
	out := make([]Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, Decode(row))
	}
	return out, nil
}

// FindByID scans for the product with the given id. Returns (nil, nil)
// when no row matches.
func (s *Store) FindByID(ctx context.Context, id string) (*Product, error) {
	rows, err := s.client.GetValues(ctx, s.spreadsheetID, readRange)
	if err != nil {
		return nil, fmt.Errorf("read products: %w", err)
	}
	for _, row := range rows {
		if cell(row, colID) == id {
			p := Decode(row)
			return &p, nil
		}
	}
	return nil, nil
}
