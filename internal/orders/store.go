package orders

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shivamsutar1233/WhatsForm-Backend/internal/sheets"
)

const (
	reachRange  = "Sheet1!A1:A1"
	readRange   = "Sheet1!A2:AG"
	appendRange = "Sheet1!A:AG"
)

// Store appends and reads order rows in the orders spreadsheet. Orders are
// append-only; nothing here updates or deletes.
type Store struct {
	client        sheets.ValuesAPI
	spreadsheetID string
	nowFunc       func() time.Time
}

// NewStore returns a Store bound to the orders spreadsheet.
func NewStore(client sheets.ValuesAPI, spreadsheetID string) *Store {
	return &Store{
		client:        client,
		spreadsheetID: spreadsheetID,
		nowFunc:       time.Now,
	}
}

// CheckReachable performs a minimal read against the orders sheet so a
// misconfigured spreadsheet surfaces before any rows are written.
func (s *Store) CheckReachable(ctx context.Context) error {
	if _, err := s.client.GetValues(ctx, s.spreadsheetID, reachRange); err != nil {
		return fmt.Errorf("orders spreadsheet unreachable: %w", err)
	}
	return nil
}

// Append writes one row per order line, stamping the current time on any
// line without an order date. A nil or empty slice appends nothing and is
// not an error.
func (s *Store) Append(ctx context.Context, lines []Order) error {
	if len(lines) == 0 {
		return nil
	}
	now := s.nowFunc().UTC().Format(time.RFC3339)
	rows := make([][]string, 0, len(lines))
	for _, o := range lines {
		if o.OrderDate == "" {
			o.OrderDate = now
		}
		rows = append(rows, Encode(o))
	}
	if err := s.client.AppendValues(ctx, s.spreadsheetID, appendRange, rows); err != nil {
		return fmt.Errorf("append order rows: %w", err)
	}
	return nil
}

// FindByOrderID scans for the first row with the given orderId and returns
// it decoded. Multi-line orders share an orderId; only the first line is
// returned. Returns (nil, nil) when no row matches.
func (s *Store) FindByOrderID(ctx context.Context, orderID string) (*Order, error) {
	rows, err := s.client.GetValues(ctx, s.spreadsheetID, readRange)
	if err != nil {
		return nil, fmt.Errorf("read orders: %w", err)
	}
	for _, row := range rows {
		if cell(row, colOrderID) == orderID {
			o := Decode(row)
			return &o, nil
		}
	}
	return nil, nil
}

// AppendCustomization writes each key's detail rows to its "Custom-<key>"
// sheet. All appends run concurrently and are awaited; the first failure
// is returned, named by its key, so a partial write is never silent.
func (s *Store) AppendCustomization(ctx context.Context, details map[string][][]string) error {
	g, gctx := errgroup.WithContext(ctx)
	for key, rows := range details {
		if len(rows) == 0 {
			continue
		}
		key, rows := key, rows
		writeRange := fmt.Sprintf("Custom-%s!A:Z", key)
		g.Go(func() error {
			if err := s.client.AppendValues(gctx, s.spreadsheetID, writeRange, rows); err != nil {
				return fmt.Errorf("customization %q: %w", key, err)
			}
			return nil
		})
	}
	return g.Wait()
}
