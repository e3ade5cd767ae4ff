package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port string

	AdminUsername string
	AdminPassword string

	// Service-account credentials for the spreadsheet backend.
	SheetsClientEmail string
	SheetsPrivateKey  string

	// Spreadsheet IDs for the three logical tables.
	ProductsSpreadsheetID   string
	OrderLinksSpreadsheetID string
	OrdersSpreadsheetID     string
}

const defaultPort = "5000"

// Load reads configuration from the environment. It fails when the
// spreadsheet service-account credentials are absent; the service cannot
// reach its backend without them.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", defaultPort)

	// viper only tracks env vars it has seen; bind each one explicitly.
	for _, key := range []string{
		"PORT",
		"ADMIN_USERNAME",
		"ADMIN_PASSWORD",
		"GOOGLE_SHEETS_CLIENT_EMAIL",
		"GOOGLE_SHEETS_PRIVATE_KEY",
		"PRODUCTS_SHEET_ID",
		"ORDER_LINKS_SHEET_ID",
		"GOOGLE_SHEETS_ID",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	cfg := &Config{
		Port:                    v.GetString("PORT"),
		AdminUsername:           v.GetString("ADMIN_USERNAME"),
		AdminPassword:           v.GetString("ADMIN_PASSWORD"),
		SheetsClientEmail:       v.GetString("GOOGLE_SHEETS_CLIENT_EMAIL"),
		SheetsPrivateKey:        normalizePrivateKey(v.GetString("GOOGLE_SHEETS_PRIVATE_KEY")),
		ProductsSpreadsheetID:   v.GetString("PRODUCTS_SHEET_ID"),
		OrderLinksSpreadsheetID: v.GetString("ORDER_LINKS_SHEET_ID"),
		OrdersSpreadsheetID:     v.GetString("GOOGLE_SHEETS_ID"),
	}

	if cfg.SheetsClientEmail == "" || cfg.SheetsPrivateKey == "" {
		return nil, fmt.Errorf("missing GOOGLE_SHEETS_CLIENT_EMAIL or GOOGLE_SHEETS_PRIVATE_KEY")
	}

	return cfg, nil
}

// normalizePrivateKey turns the literal "\n" sequences that survive
// env-var quoting back into real newlines so the PEM block parses.
func normalizePrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}
