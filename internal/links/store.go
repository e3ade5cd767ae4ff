package links

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shivamsutar1233/WhatsForm-Backend/internal/sheets"
)

const (
	sheetTitle  = "OrderLinks"
	headerRange = "OrderLinks!A1:D1"
	readRange   = "OrderLinks!A2:E"
	writeRange  = "OrderLinks!A2"
	appendRange = "OrderLinks!A:E"
)

// headerRow is written when the sheet is first provisioned and verified
// against existing sheets at startup.
var headerRow = []string{"Link ID", "Product ID", "Quantity", "Timestamp"}

// LineInput is one basket entry in a link-creation request.
type LineInput struct {
	ProductID string
	Quantity  int
}

// Store manages the OrderLinks sheet.
type Store struct {
	client        sheets.API
	spreadsheetID string

	// ensureMu guards one-time sheet provisioning; updateMu serializes the
	// read-clear-write cycle of payment-status updates so concurrent
	// requests in this process cannot interleave and drop rows. Writers in
	// other processes are still last-writer-wins.
	ensureMu sync.Mutex
	ensured  bool
	updateMu sync.Mutex

	nowFunc func() time.Time
}

// NewStore returns a Store bound to the order-links spreadsheet.
func NewStore(client sheets.API, spreadsheetID string) *Store {
	return &Store{
		client:        client,
		spreadsheetID: spreadsheetID,
		nowFunc:       time.Now,
	}
}

// EnsureSheet provisions the OrderLinks sheet on first use: if no sheet
// with that title exists it is created and given its header row. When the
// sheet already exists the header is checked against the expected layout,
// since every reader depends on the column positions. Runs at most once
// per process; a failed attempt is retried on the next call.
func (s *Store) EnsureSheet(ctx context.Context) error {
	s.ensureMu.Lock()
	defer s.ensureMu.Unlock()
	if s.ensured {
		return nil
	}

	titles, err := s.client.SheetTitles(ctx, s.spreadsheetID)
	if err != nil {
		return fmt.Errorf("list sheets: %w", err)
	}

	exists := false
	for _, t := range titles {
		if t == sheetTitle {
			exists = true
			break
		}
	}

	if !exists {
		if err := s.client.CreateSheet(ctx, s.spreadsheetID, sheetTitle); err != nil {
			return fmt.Errorf("create %s sheet: %w", sheetTitle, err)
		}
		if err := s.client.AppendValues(ctx, s.spreadsheetID, appendRange, [][]string{headerRow}); err != nil {
			return fmt.Errorf("write %s header: %w", sheetTitle, err)
		}
		s.ensured = true
		return nil
	}

	if err := s.verifyHeader(ctx); err != nil {
		return err
	}
	s.ensured = true
	return nil
}

func (s *Store) verifyHeader(ctx context.Context) error {
	rows, err := s.client.GetValues(ctx, s.spreadsheetID, headerRange)
	if err != nil {
		return fmt.Errorf("read %s header: %w", sheetTitle, err)
	}
	if len(rows) == 0 {
		// Empty sheet with the right title; give it the header.
		return s.client.AppendValues(ctx, s.spreadsheetID, appendRange, [][]string{headerRow})
	}
	got := rows[0]
	for i, want := range headerRow {
		if i >= len(got) || got[i] != want {
			return fmt.Errorf("%s header mismatch at column %d: want %q", sheetTitle, i, want)
		}
	}
	return nil
}

// Create appends one row per basket line, all sharing a fresh link id and
// the same timestamp, and returns the link id.
func (s *Store) Create(ctx context.Context, lines []LineInput) (string, error) {
	if err := s.EnsureSheet(ctx); err != nil {
		return "", err
	}

	linkID, err := NewLinkID()
	if err != nil {
		return "", fmt.Errorf("generate link id: %w", err)
	}
	ts := s.nowFunc().UTC().Format(time.RFC3339)

	rows := make([][]string, 0, len(lines))
	for _, in := range lines {
		rows = append(rows, Encode(Line{
			LinkID:        linkID,
			ProductID:     in.ProductID,
			Quantity:      in.Quantity,
			Timestamp:     ts,
			PaymentStatus: StatusPending,
		}))
	}

	if err := s.client.AppendValues(ctx, s.spreadsheetID, appendRange, rows); err != nil {
		return "", fmt.Errorf("append link rows: %w", err)
	}
	return linkID, nil
}

// FindByLinkID returns every decoded line of the given link, in sheet
// order. An empty slice means the link does not exist.
func (s *Store) FindByLinkID(ctx context.Context, linkID string) ([]Line, error) {
	rows, err := s.client.GetValues(ctx, s.spreadsheetID, readRange)
	if err != nil {
		return nil, fmt.Errorf("read order links: %w", err)
	}
	var out []Line
	for _, row := range rows {
		if cell(row, colLinkID) == linkID {
			out = append(out, Decode(row))
		}
	}
	return out, nil
}

// UpdatePaymentStatus sets the payment status on every row of the given
// link and writes the full table back, leaving other links' rows as they
// were. Returns the number of rows updated; zero means the link was not
// found and nothing was written.
//
// The sheet API has no conditional update, so this is a read-clear-write
// cycle. updateMu makes it single-writer within this process; a crash
// between the clear and the write-back still loses the table.
func (s *Store) UpdatePaymentStatus(ctx context.Context, linkID, status string) (int, error) {
	s.updateMu.Lock()
	defer s.updateMu.Unlock()

	rows, err := s.client.GetValues(ctx, s.spreadsheetID, readRange)
	if err != nil {
		return 0, fmt.Errorf("read order links: %w", err)
	}

	updated := 0
	for i, row := range rows {
		if cell(row, colLinkID) != linkID {
			continue
		}
		if len(row) < rowWidth {
			padded := make([]string, rowWidth)
			copy(padded, row)
			row = padded
			rows[i] = row
		}
		row[colPaymentStatus] = status
		updated++
	}
	if updated == 0 {
		return 0, nil
	}

	if err := s.client.ClearValues(ctx, s.spreadsheetID, readRange); err != nil {
		return 0, fmt.Errorf("clear order links: %w", err)
	}
	if err := s.client.UpdateValues(ctx, s.spreadsheetID, writeRange, rows); err != nil {
		return 0, fmt.Errorf("write order links: %w", err)
	}
	return updated, nil
}
