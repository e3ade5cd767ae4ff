package sheets

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"
)

// Client implements API on top of the Google Sheets v4 service.
type Client struct {
	svc *sheetsv4.Service
}

// NewClient authenticates with a service account and returns a ready Client.
func NewClient(ctx context.Context, clientEmail, privateKey string) (*Client, error) {
	conf := &jwt.Config{
		Email:      clientEmail,
		PrivateKey: []byte(privateKey),
		Scopes:     []string{sheetsv4.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := sheetsv4.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("new sheets service: %w", err)
	}
	return &Client{svc: svc}, nil
}

func (c *Client) GetValues(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get values %s: %w", readRange, err)
	}
	return toStringRows(resp.Values), nil
}

func (c *Client) AppendValues(ctx context.Context, spreadsheetID, writeRange string, rows [][]string) error {
	vr := &sheetsv4.ValueRange{Values: toInterfaceRows(rows)}
	_, err := c.svc.Spreadsheets.Values.Append(spreadsheetID, writeRange, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append values %s: %w", writeRange, err)
	}
	return nil
}

func (c *Client) UpdateValues(ctx context.Context, spreadsheetID, writeRange string, rows [][]string) error {
	vr := &sheetsv4.ValueRange{Values: toInterfaceRows(rows)}
	_, err := c.svc.Spreadsheets.Values.Update(spreadsheetID, writeRange, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update values %s: %w", writeRange, err)
	}
	return nil
}

func (c *Client) ClearValues(ctx context.Context, spreadsheetID, clearRange string) error {
	_, err := c.svc.Spreadsheets.Values.Clear(spreadsheetID, clearRange, &sheetsv4.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("clear values %s: %w", clearRange, err)
	}
	return nil
}

func (c *Client) SheetTitles(ctx context.Context, spreadsheetID string) ([]string, error) {
	meta, err := c.svc.Spreadsheets.Get(spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get spreadsheet: %w", err)
	}
	titles := make([]string, 0, len(meta.Sheets))
	for _, s := range meta.Sheets {
		if s.Properties != nil {
			titles = append(titles, s.Properties.Title)
		}
	}
	return titles, nil
}

func (c *Client) CreateSheet(ctx context.Context, spreadsheetID, title string) error {
	req := &sheetsv4.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsv4.Request{
			{
				AddSheet: &sheetsv4.AddSheetRequest{
					Properties: &sheetsv4.SheetProperties{Title: title},
				},
			},
		},
	}
	_, err := c.svc.Spreadsheets.BatchUpdate(spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("create sheet %q: %w", title, err)
	}
	return nil
}

// toStringRows flattens the API's interface-valued cells to strings. The
// backend stores everything as text from our perspective; non-string cells
// are formatted with %v.
func toStringRows(values [][]interface{}) [][]string {
	rows := make([][]string, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, cell := range row {
			if s, ok := cell.(string); ok {
				cells[j] = s
			} else if cell != nil {
				cells[j] = fmt.Sprintf("%v", cell)
			}
		}
		rows[i] = cells
	}
	return rows
}

func toInterfaceRows(rows [][]string) [][]interface{} {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}
	return values
}
