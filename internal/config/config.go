package config // package config loads application configuration from environment variables

import (
	"errors"  // errors lets Load detect a missing dotenv file
	"fmt"     // fmt formats validation errors
	"io/fs"   // fs provides the not-exist sentinel
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"strings" // strings normalises enum values

	"github.com/joho/godotenv"      // godotenv seeds the environment from a .env file
	"github.com/shopspring/decimal" // decimal parses the ticket price exactly
)

// Seat picker modes accepted in SEAT_PICKER.
const (
	PickerPrompt = "prompt" // type "row column" for each ticket
	PickerTUI    = "tui"    // full-screen interactive seat map
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: ints for the grid, a decimal for money, strings for
// paths and modes.
type Config struct {
	Env            string          // application environment (e.g. "dev", "prod")
	SeatRows       int             // number of seating rows
	SeatCols       int             // number of seats per row
	TicketPrice    decimal.Decimal // price of a single ticket
	CurrencySymbol string          // prefix used when printing money
	SeatPicker     string          // "prompt" or "tui"
	BookingLog     string          // booking journal path; empty disables the journal
	DebugLog       bool            // write diagnostic logs to logs/theater.log
}

// Load reads configuration values from the environment and returns a
// Config.  When envFile exists it is loaded first; variables already set
// in the environment win over the file.  Invalid values are reported as
// an error so the caller can exit with a message.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	price, err := decimal.NewFromString(envStr("TICKET_PRICE", "6.25"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid TICKET_PRICE: %w", err)
	}
	rows, err := envInt("SEAT_ROWS", 10)
	if err != nil {
		return Config{}, err
	}
	cols, err := envInt("SEAT_COLS", 9)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Env:            envStr("APP_ENV", "dev"),                             // environment (dev/test/prod)
		SeatRows:       rows,                                                 // reference theater has 10 rows
		SeatCols:       cols,                                                 // of 9 seats each
		TicketPrice:    price,                                                // ticket price
		CurrencySymbol: envStr("CURRENCY_SYMBOL", "$"),                       // money prefix
		SeatPicker:     strings.ToLower(envStr("SEAT_PICKER", PickerPrompt)), // seat selection mode
		BookingLog:     strings.TrimSpace(os.Getenv("BOOKING_LOG")),          // journal path (empty disables)
		DebugLog:       envBool("DEBUG_LOG", false),                          // diagnostic log file
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that the ledger and console depend on.
func (c Config) Validate() error {
	if c.SeatRows < 1 {
		return fmt.Errorf("invalid SEAT_ROWS: %d", c.SeatRows)
	}
	if c.SeatCols < 1 {
		return fmt.Errorf("invalid SEAT_COLS: %d", c.SeatCols)
	}
	if c.TicketPrice.IsNegative() {
		return fmt.Errorf("invalid TICKET_PRICE: %s must not be negative", c.TicketPrice)
	}
	// Prices are whole cents.
	if !c.TicketPrice.Equal(c.TicketPrice.Round(2)) {
		return fmt.Errorf("invalid TICKET_PRICE: %s has more than two decimal places", c.TicketPrice)
	}
	switch c.SeatPicker {
	case PickerPrompt, PickerTUI:
	default:
		return fmt.Errorf("invalid SEAT_PICKER: %q", c.SeatPicker)
	}
	return nil
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

// envInt reads k as an integer, returning d when it is unset.  A value
// that is set but not a number is reported as it was typed.
func envInt(k string, d int) (int, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q is not a number", k, v)
	}
	return n, nil
}
