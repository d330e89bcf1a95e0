package main

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/theater-seating/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		Env:            "test",
		SeatRows:       10,
		SeatCols:       9,
		TicketPrice:    decimal.RequireFromString("6.25"),
		CurrencySymbol: "$",
		SeatPicker:     config.PickerPrompt,
	}
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	if logFile := setupLogging(false); logFile != nil {
		logFile.Close()
		t.Fatal("Expected nil log file when debug=false")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", log.Writer())
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer os.Chdir(wd)
	defer log.SetOutput(os.Stderr)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	log.Println("Test log message")

	info, err := os.Stat(filepath.Join(dir, logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}

func TestRun_WritesBookingJournal(t *testing.T) {
	cfg := testConfig()
	cfg.BookingLog = filepath.Join(t.TempDir(), "logs", "booking.log")

	var out bytes.Buffer
	input := "1\n2\n1 1\n1 2\ny\n\n4\n"
	if err := run(context.Background(), cfg, strings.NewReader(input), &out, io.Discard, false); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "ORDER PROCESSED SUCCESSFULLY") {
		t.Fatalf("expected a processed order:\n%s", out.String())
	}

	data, err := os.ReadFile(cfg.BookingLog)
	if err != nil {
		t.Fatalf("read journal: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, "seats=[R1C1,R1C2]") || !strings.Contains(line, "total=12.50") {
		t.Fatalf("unexpected journal line %q", line)
	}
}

func TestRun_TUIFallsBackWithoutTerminal(t *testing.T) {
	cfg := testConfig()
	cfg.SeatPicker = config.PickerTUI

	var out bytes.Buffer
	if err := run(context.Background(), cfg, strings.NewReader("1\n1\n5 5\ny\n\n4\n"), &out, io.Discard, false); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Choose a seat for ticket 1 of 1") {
		t.Fatalf("expected prompt-based seat selection:\n%s", out.String())
	}
}

func TestRun_InvalidGrid(t *testing.T) {
	cfg := testConfig()
	cfg.SeatRows = 0
	if err := run(context.Background(), cfg, strings.NewReader(""), io.Discard, io.Discard, false); err == nil {
		t.Fatal("expected error for an empty grid")
	}
}

func TestRun_ErrorsGoToErrorOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	input := "1\n0\n1\n11 1\n1 1\nn\n"
	if err := run(context.Background(), testConfig(), strings.NewReader(input), &out, &errOut, false); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{
		"Error: Quantity requested is not available or you entered an invalid amount.",
		"Error: Seat location is invalid.",
	} {
		if !strings.Contains(errOut.String(), want) {
			t.Fatalf("expected %q on the error output, got %q", want, errOut.String())
		}
		if strings.Contains(out.String(), want) {
			t.Fatalf("%q leaked into the main output", want)
		}
	}
}

func TestRealMain_InvalidConfigExitCode(t *testing.T) {
	t.Setenv("SEAT_ROWS", "ten")
	if code := realMain(); code != 2 {
		t.Fatalf("expected exit code 2 for invalid config, got %d", code)
	}
}
