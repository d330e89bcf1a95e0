package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var configKeys = []string{
	"APP_ENV", "SEAT_ROWS", "SEAT_COLS", "TICKET_PRICE",
	"CURRENCY_SYMBOL", "SEAT_PICKER", "BOOKING_LOG", "DEBUG_LOG",
}

// clearEnv unsets every configuration variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		if v, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { os.Setenv(k, v) })
		} else {
			t.Cleanup(func() { os.Unsetenv(k) })
		}
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SeatRows != 10 || cfg.SeatCols != 9 {
		t.Fatalf("expected 10x9, got %dx%d", cfg.SeatRows, cfg.SeatCols)
	}
	if cfg.TicketPrice.StringFixed(2) != "6.25" {
		t.Fatalf("expected price 6.25, got %s", cfg.TicketPrice)
	}
	if cfg.CurrencySymbol != "$" || cfg.SeatPicker != PickerPrompt || cfg.Env != "dev" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.BookingLog != "" || cfg.DebugLog {
		t.Fatalf("expected journal and debug log disabled, got %+v", cfg)
	}
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	os.Setenv("SEAT_ROWS", "4")
	os.Setenv("SEAT_COLS", "6")
	os.Setenv("TICKET_PRICE", "12.00")
	os.Setenv("SEAT_PICKER", "TUI")
	os.Setenv("BOOKING_LOG", " logs/booking.log ")
	os.Setenv("DEBUG_LOG", "yes")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SeatRows != 4 || cfg.SeatCols != 6 {
		t.Fatalf("expected 4x6, got %dx%d", cfg.SeatRows, cfg.SeatCols)
	}
	if cfg.TicketPrice.StringFixed(2) != "12.00" {
		t.Fatalf("expected price 12.00, got %s", cfg.TicketPrice)
	}
	if cfg.SeatPicker != PickerTUI {
		t.Fatalf("expected tui picker, got %q", cfg.SeatPicker)
	}
	if cfg.BookingLog != "logs/booking.log" || !cfg.DebugLog {
		t.Fatalf("unexpected journal settings %+v", cfg)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	os.Setenv("SEAT_ROWS", "3") // environment wins over the file

	path := filepath.Join(t.TempDir(), ".env")
	body := "SEAT_ROWS=7\nSEAT_COLS=5\nTICKET_PRICE=8.50\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SeatRows != 3 {
		t.Fatalf("expected environment SEAT_ROWS=3 to win, got %d", cfg.SeatRows)
	}
	if cfg.SeatCols != 5 || cfg.TicketPrice.StringFixed(2) != "8.50" {
		t.Fatalf("expected file values 5 and 8.50, got %d and %s", cfg.SeatCols, cfg.TicketPrice)
	}
}

func TestLoad_MissingDotEnvIsIgnored(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected missing env file to be ignored, got %v", err)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"zero rows", "SEAT_ROWS", "0"},
		{"non-numeric columns", "SEAT_COLS", "nine"},
		{"bad price", "TICKET_PRICE", "six"},
		{"negative price", "TICKET_PRICE", "-1"},
		{"fraction of a cent", "TICKET_PRICE", "0.005"},
		{"unknown picker", "SEAT_PICKER", "mouse"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			os.Setenv(tc.key, tc.value)
			if _, err := Load(""); err == nil {
				t.Fatalf("expected error for %s=%q", tc.key, tc.value)
			}
		})
	}
}

func TestLoad_PriceInWholeCents(t *testing.T) {
	clearEnv(t)
	os.Setenv("TICKET_PRICE", "6.250")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("expected trailing zero to be accepted, got %v", err)
	}
	if cfg.TicketPrice.StringFixed(2) != "6.25" {
		t.Fatalf("expected price 6.25, got %s", cfg.TicketPrice)
	}
}

func TestLoad_NonNumericReportsValue(t *testing.T) {
	clearEnv(t)
	os.Setenv("SEAT_COLS", "nine")

	_, err := Load("")
	if err == nil {
		t.Fatal("expected error for SEAT_COLS=nine")
	}
	if !strings.Contains(err.Error(), `SEAT_COLS: "nine"`) {
		t.Fatalf("expected the typed value in the error, got %v", err)
	}
}
