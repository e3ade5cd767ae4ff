package orders

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

// mockValues records appends per range and serves canned order rows.
type mockValues struct {
	mu      sync.Mutex
	rows    [][]string
	appends map[string][][]string
	getErr  error
	failKey string // customization range substring that should fail
}

func newMockValues() *mockValues {
	return &mockValues{appends: map[string][][]string{}}
}

func (m *mockValues) GetValues(ctx context.Context, spreadsheetID, rng string) ([][]string, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if rng == reachRange {
		return nil, nil
	}
	return m.rows, nil
}

func (m *mockValues) AppendValues(ctx context.Context, spreadsheetID, rng string, rows [][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failKey != "" && strings.Contains(rng, m.failKey) {
		return errors.New("Unable to parse range: " + rng)
	}
	m.appends[rng] = append(m.appends[rng], rows...)
	return nil
}

func (m *mockValues) UpdateValues(ctx context.Context, spreadsheetID, rng string, rows [][]string) error {
	return errors.New("orders store must not update")
}

func (m *mockValues) ClearValues(ctx context.Context, spreadsheetID, rng string) error {
	return errors.New("orders store must not clear")
}

func TestAppendWritesOneRowPerLine(t *testing.T) {
	m := newMockValues()
	s := NewStore(m, "sheet-id")

	lines := []Order{
		{OrderID: "ORD-1", Product: ProductLine{ProductID: "p1", Quantity: 2, Price: 100}},
		{OrderID: "ORD-1", Product: ProductLine{ProductID: "p2", Quantity: 1, Price: 50}},
	}
	if err := s.Append(context.Background(), lines); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got := m.appends[appendRange]
	if len(got) != 2 {
		t.Fatalf("expected 2 rows appended, got %d", len(got))
	}
	if got[0][colOrderID] != "ORD-1" || got[1][colProductID] != "p2" {
		t.Fatalf("unexpected rows: %v", got)
	}
}

func TestAppendStampsMissingOrderDate(t *testing.T) {
	m := newMockValues()
	s := NewStore(m, "sheet-id")
	s.nowFunc = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }

	lines := []Order{
		{OrderID: "ORD-1", Product: ProductLine{ProductID: "p1", Quantity: 1}},
		{OrderID: "ORD-2", OrderDate: "2024-02-20T08:00:00Z", Product: ProductLine{ProductID: "p2", Quantity: 1}},
	}
	if err := s.Append(context.Background(), lines); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got := m.appends[appendRange]
	if got[0][colOrderDate] != "2024-03-01T12:00:00Z" {
		t.Fatalf("missing date not stamped: %v", got[0])
	}
	if got[1][colOrderDate] != "2024-02-20T08:00:00Z" {
		t.Fatalf("caller-supplied date overwritten: %v", got[1])
	}
}

func TestAppendEmptyIsNoOp(t *testing.T) {
	m := newMockValues()
	s := NewStore(m, "sheet-id")

	if err := s.Append(context.Background(), nil); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if len(m.appends) != 0 {
		t.Fatalf("no rows should be written for an empty order: %v", m.appends)
	}
}

func TestFindByOrderIDReturnsFirstMatch(t *testing.T) {
	first := Encode(Order{OrderID: "ORD-1", Product: ProductLine{ProductID: "p1", Quantity: 2}})
	second := Encode(Order{OrderID: "ORD-1", Product: ProductLine{ProductID: "p2", Quantity: 1}})
	other := Encode(Order{OrderID: "ORD-2", Product: ProductLine{ProductID: "p9", Quantity: 3}})

	m := newMockValues()
	m.rows = [][]string{other, first, second}
	s := NewStore(m, "sheet-id")

	o, err := s.FindByOrderID(context.Background(), "ORD-1")
	if err != nil {
		t.Fatalf("FindByOrderID: %v", err)
	}
	if o == nil {
		t.Fatal("expected a match")
	}
	// Sibling lines share the orderId; only the first row comes back.
	if o.Product.ProductID != "p1" {
		t.Fatalf("expected first matching line, got %+v", o.Product)
	}
}

func TestFindByOrderIDAbsent(t *testing.T) {
	m := newMockValues()
	s := NewStore(m, "sheet-id")

	o, err := s.FindByOrderID(context.Background(), "ORD-404")
	if err != nil {
		t.Fatalf("FindByOrderID: %v", err)
	}
	if o != nil {
		t.Fatalf("expected nil, got %+v", o)
	}
}

func TestCheckReachableSurfacesBackendError(t *testing.T) {
	m := newMockValues()
	m.getErr = errors.New("Requested entity was not found")
	s := NewStore(m, "sheet-id")

	if err := s.CheckReachable(context.Background()); err == nil {
		t.Fatal("expected reachability error")
	}
}

func TestAppendCustomizationWritesEveryKey(t *testing.T) {
	m := newMockValues()
	s := NewStore(m, "sheet-id")

	details := map[string][][]string{
		"engraving": {{"ORD-1", "front", "Happy Birthday"}},
		"giftwrap":  {{"ORD-1", "gold"}, {"ORD-1", "note attached"}},
	}
	if err := s.AppendCustomization(context.Background(), details); err != nil {
		t.Fatalf("AppendCustomization: %v", err)
	}

	if got := m.appends["Custom-engraving!A:Z"]; len(got) != 1 {
		t.Fatalf("engraving rows missing: %v", m.appends)
	}
	if got := m.appends["Custom-giftwrap!A:Z"]; len(got) != 2 {
		t.Fatalf("giftwrap rows missing: %v", m.appends)
	}
}

func TestAppendCustomizationReportsFailingKey(t *testing.T) {
	m := newMockValues()
	m.failKey = "Custom-engraving"
	s := NewStore(m, "sheet-id")

	details := map[string][][]string{
		"engraving": {{"ORD-1", "front"}},
	}
	err := s.AppendCustomization(context.Background(), details)
	if err == nil {
		t.Fatal("expected failure to surface instead of being dropped")
	}
	if !strings.Contains(err.Error(), "engraving") {
		t.Fatalf("error should name the failing key: %v", err)
	}
}
