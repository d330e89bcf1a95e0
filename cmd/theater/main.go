package main // Entry point package

import (
	"context"       // session context
	"flag"          // command-line flags
	"fmt"           // error output
	"io"            // reader/writer plumbing
	"log"           // logging library
	"os"            // stdin/stdout and log files
	"path/filepath" // debug log path

	"golang.org/x/term" // terminal detection

	"github.com/iliyamo/theater-seating/internal/booking" // booking journal
	"github.com/iliyamo/theater-seating/internal/clock"   // order timestamps
	"github.com/iliyamo/theater-seating/internal/config"  // environment config loader
	"github.com/iliyamo/theater-seating/internal/console" // menu-driven front end
	"github.com/iliyamo/theater-seating/internal/ledger"  // seating ledger
	"github.com/iliyamo/theater-seating/internal/service" // purchase flow
	"github.com/iliyamo/theater-seating/internal/tui"     // full-screen seat picker
)

const (
	logDir      = "logs"
	logFileName = "theater.log"
)

var envFile = flag.String("env", ".env", "dotenv file to load before reading the environment")

func main() {
	os.Exit(realMain())
}

// realMain runs the program and returns its exit code.  Deferred
// cleanup runs before main exits.
func realMain() int {
	flag.Parse()

	cfg, err := config.Load(*envFile) // Load environment config
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 2
	}

	// Diagnostics go to a file or nowhere so they never mix with the menus.
	if logFile := setupLogging(cfg.DebugLog); logFile != nil {
		defer logFile.Close()
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	if err := run(context.Background(), cfg, os.Stdin, os.Stdout, os.Stderr, interactive); err != nil {
		log.Printf("theater: %v", err)
		fmt.Fprintf(os.Stderr, "theater: %v\n", err)
		return 1
	}
	return 0
}

// run builds the ledger and its collaborators from cfg and runs one
// console session.  Validation messages go to errOut.  interactive
// enables screen clearing and the full-screen seat picker.
func run(ctx context.Context, cfg config.Config, in io.Reader, out, errOut io.Writer, interactive bool) error {
	l, err := ledger.New(cfg.SeatRows, cfg.SeatCols, cfg.TicketPrice)
	if err != nil {
		return err
	}

	var svcOpts []service.Option
	if cfg.BookingLog != "" {
		journal, err := booking.Open(cfg.BookingLog)
		if err != nil {
			return err
		}
		defer journal.Close()
		svcOpts = append(svcOpts, service.WithPublisher(journal))
	}
	svc := service.NewPurchaseService(l, clock.NewSystem(), svcOpts...)

	consoleOpts := []console.Option{
		console.WithErrorOutput(errOut),
		console.WithCurrency(cfg.CurrencySymbol),
		console.WithClearScreen(interactive),
	}
	if cfg.SeatPicker == config.PickerTUI {
		if interactive {
			consoleOpts = append(consoleOpts, console.WithSeatPicker(tui.NewPicker()))
		} else {
			log.Printf("theater: SEAT_PICKER=tui needs a terminal, falling back to prompts")
		}
	}

	log.Printf("theater: starting (env=%s, seats=%dx%d, price=%s, journal=%q)",
		cfg.Env, cfg.SeatRows, cfg.SeatCols, cfg.TicketPrice.StringFixed(2), cfg.BookingLog)
	return console.New(svc, in, out, consoleOpts...).Run(ctx)
}

// setupLogging sends the standard logger to logs/theater.log when debug
// is on and discards it otherwise.  The returned file, if any, must be
// closed by the caller.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
