package sheets

import "context"

// ValuesAPI is the subset of the spreadsheet values surface the stores
// depend on. Declared here so package tests can substitute an in-memory
// implementation.
type ValuesAPI interface {
	// GetValues reads a range and returns rows of cell strings. Rows may
	// be shorter than the addressed range; trailing empty cells are not
	// returned by the backend.
	GetValues(ctx context.Context, spreadsheetID, readRange string) ([][]string, error)
	// AppendValues appends rows after the last data row of the range's table.
	AppendValues(ctx context.Context, spreadsheetID, writeRange string, rows [][]string) error
	// UpdateValues overwrites the range with the given rows.
	UpdateValues(ctx context.Context, spreadsheetID, writeRange string, rows [][]string) error
	// ClearValues clears every cell in the range.
	ClearValues(ctx context.Context, spreadsheetID, clearRange string) error
}

// AdminAPI covers sheet-level administration within a spreadsheet.
type AdminAPI interface {
	// SheetTitles lists the titles of all sheets in the spreadsheet.
	SheetTitles(ctx context.Context, spreadsheetID string) ([]string, error)
	// CreateSheet adds an empty sheet with the given title.
	CreateSheet(ctx context.Context, spreadsheetID, title string) error
}

// API is the full spreadsheet table-adapter capability.
type API interface {
	ValuesAPI
	AdminAPI
}
