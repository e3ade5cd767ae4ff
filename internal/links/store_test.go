package links

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"
)

// fakeSheets is an in-memory stand-in for the OrderLinks sheet. It keys
// behavior off the exact ranges the store uses.
type fakeSheets struct {
	mu     sync.Mutex
	titles []string
	header []string
	rows   [][]string

	appendCalls int
	clearCalls  int
	updateCalls int
	createCalls int
	titlesCalls int
}

func (f *fakeSheets) GetValues(ctx context.Context, spreadsheetID, rng string) ([][]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch rng {
	case headerRange:
		if f.header == nil {
			return nil, nil
		}
		return [][]string{f.header}, nil
	case readRange:
		return f.rows, nil
	}
	return nil, nil
}

func (f *fakeSheets) AppendValues(ctx context.Context, spreadsheetID, rng string, rows [][]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appendCalls++
	for _, row := range rows {
		if f.header == nil {
			f.header = row
			continue
		}
		f.rows = append(f.rows, row)
	}
	return nil
}

func (f *fakeSheets) UpdateValues(ctx context.Context, spreadsheetID, rng string, rows [][]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	f.rows = rows
	return nil
}

func (f *fakeSheets) ClearValues(ctx context.Context, spreadsheetID, rng string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clearCalls++
	f.rows = nil
	return nil
}

func (f *fakeSheets) SheetTitles(ctx context.Context, spreadsheetID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.titlesCalls++
	return f.titles, nil
}

func (f *fakeSheets) CreateSheet(ctx context.Context, spreadsheetID, title string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	f.titles = append(f.titles, title)
	return nil
}

func existingSheet(rows [][]string) *fakeSheets {
	return &fakeSheets{
		titles: []string{"Sheet1", sheetTitle},
		header: append([]string(nil), headerRow...),
		rows:   rows,
	}
}

var hexLinkID = regexp.MustCompile(`^[0-9a-f]{16}$`)

func TestNewLinkID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id, err := NewLinkID()
		if err != nil {
			t.Fatalf("NewLinkID: %v", err)
		}
		if !hexLinkID.MatchString(id) {
			t.Fatalf("link id %q is not 16 lowercase hex chars", id)
		}
		if seen[id] {
			t.Fatalf("duplicate link id %q", id)
		}
		seen[id] = true
	}
}

func TestCreateProvisionsMissingSheet(t *testing.T) {
	f := &fakeSheets{titles: []string{"Sheet1"}}
	s := NewStore(f, "sheet-id")
	s.nowFunc = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }

	linkID, err := s.Create(context.Background(), []LineInput{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 1},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !hexLinkID.MatchString(linkID) {
		t.Fatalf("bad link id %q", linkID)
	}

	if f.createCalls != 1 {
		t.Fatalf("expected sheet creation, got %d calls", f.createCalls)
	}
	if len(f.header) != len(headerRow) {
		t.Fatalf("header row not written: %v", f.header)
	}
	if len(f.rows) != 2 {
		t.Fatalf("expected 2 link rows, got %d", len(f.rows))
	}
	for _, row := range f.rows {
		if row[colLinkID] != linkID {
			t.Fatalf("rows do not share link id: %v", f.rows)
		}
		if row[colTimestamp] != "2024-03-01T12:00:00Z" {
			t.Fatalf("unexpected timestamp %q", row[colTimestamp])
		}
		if row[colPaymentStatus] != StatusPending {
			t.Fatalf("new rows must start pending, got %q", row[colPaymentStatus])
		}
	}
}

func TestCreateSkipsProvisioningWhenSheetExists(t *testing.T) {
	f := existingSheet(nil)
	s := NewStore(f, "sheet-id")

	if _, err := s.Create(context.Background(), []LineInput{{ProductID: "p1", Quantity: 1}}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if f.createCalls != 0 {
		t.Fatalf("sheet recreated unexpectedly")
	}
}

func TestEnsureSheetHeaderMismatch(t *testing.T) {
	f := existingSheet(nil)
	f.header = []string{"Link ID", "Wrong", "Quantity", "Timestamp"}
	s := NewStore(f, "sheet-id")

	if err := s.EnsureSheet(context.Background()); err == nil {
		t.Fatal("expected header mismatch error")
	}
}

func TestEnsureSheetRunsOnce(t *testing.T) {
	f := existingSheet(nil)
	s := NewStore(f, "sheet-id")

	for i := 0; i < 3; i++ {
		if err := s.EnsureSheet(context.Background()); err != nil {
			t.Fatalf("EnsureSheet: %v", err)
		}
	}
	if f.titlesCalls != 1 {
		t.Fatalf("expected a single provisioning check, got %d", f.titlesCalls)
	}
	if f.createCalls != 0 {
		t.Fatalf("unexpected sheet creation")
	}
}

func TestFindByLinkID(t *testing.T) {
	f := existingSheet([][]string{
		{"aaaa000011112222", "p1", "2", "2024-03-01T12:00:00Z", "pending"},
		{"bbbb000011112222", "p9", "1", "2024-03-02T12:00:00Z", "paid"},
		{"aaaa000011112222", "p2", "1", "2024-03-01T12:00:00Z", ""},
	})
	s := NewStore(f, "sheet-id")

	lines, err := s.FindByLinkID(context.Background(), "aaaa000011112222")
	if err != nil {
		t.Fatalf("FindByLinkID: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].ProductID != "p1" || lines[1].ProductID != "p2" {
		t.Fatalf("unexpected lines: %+v", lines)
	}
	// Empty status column defaults to pending on decode.
	if lines[1].PaymentStatus != StatusPending {
		t.Fatalf("expected pending default, got %q", lines[1].PaymentStatus)
	}
}

func TestFindByLinkIDAbsent(t *testing.T) {
	f := existingSheet(nil)
	s := NewStore(f, "sheet-id")

	lines, err := s.FindByLinkID(context.Background(), "ffff000011112222")
	if err != nil {
		t.Fatalf("FindByLinkID: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected no lines, got %+v", lines)
	}
}

func TestUpdatePaymentStatus(t *testing.T) {
	f := existingSheet([][]string{
		{"aaaa000011112222", "p1", "2", "2024-03-01T12:00:00Z", "pending"},
		{"bbbb000011112222", "p9", "1", "2024-03-02T12:00:00Z", "pending"},
		{"aaaa000011112222", "p2", "1", "2024-03-01T12:00:00Z"},
	})
	s := NewStore(f, "sheet-id")

	updated, err := s.UpdatePaymentStatus(context.Background(), "aaaa000011112222", "paid")
	if err != nil {
		t.Fatalf("UpdatePaymentStatus: %v", err)
	}
	if updated != 2 {
		t.Fatalf("expected 2 rows updated, got %d", updated)
	}
	if f.clearCalls != 1 || f.updateCalls != 1 {
		t.Fatalf("expected one clear and one write-back, got %d/%d", f.clearCalls, f.updateCalls)
	}

	if f.rows[0][colPaymentStatus] != "paid" || f.rows[2][colPaymentStatus] != "paid" {
		t.Fatalf("matching rows not updated uniformly: %v", f.rows)
	}
	if f.rows[1][colPaymentStatus] != "pending" {
		t.Fatalf("unrelated link touched: %v", f.rows[1])
	}
}

func TestUpdatePaymentStatusUnknownLinkWritesNothing(t *testing.T) {
	f := existingSheet([][]string{
		{"aaaa000011112222", "p1", "2", "2024-03-01T12:00:00Z", "pending"},
	})
	s := NewStore(f, "sheet-id")

	updated, err := s.UpdatePaymentStatus(context.Background(), "ffff000011112222", "paid")
	if err != nil {
		t.Fatalf("UpdatePaymentStatus: %v", err)
	}
	if updated != 0 {
		t.Fatalf("expected 0 rows updated, got %d", updated)
	}
	if f.clearCalls != 0 || f.updateCalls != 0 {
		t.Fatal("unknown link must not trigger a clear or write-back")
	}
}
