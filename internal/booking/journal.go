package booking

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const timeLayout = time.RFC3339

// Journal appends one line per confirmed order to an underlying writer.
// It is an audit trail only; the application never reads it back.
type Journal struct {
	w      io.Writer
	closer io.Closer
}

// NewJournal returns a journal writing to w.
func NewJournal(w io.Writer) *Journal {
	return &Journal{w: w}
}

// Open creates the parent directory of path if needed and opens the
// file in append mode.  The caller must Close the journal.
func Open(path string) (*Journal, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir journal dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return &Journal{w: f, closer: f}, nil
}

// PublishBookingConfirmed writes ev as a single human-friendly line.
func (j *Journal) PublishBookingConfirmed(ctx context.Context, ev ConfirmedEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	seats := "[]"
	if len(ev.SeatLabels) > 0 {
		seats = fmt.Sprintf("[%s]", strings.Join(ev.SeatLabels, ","))
	}
	line := fmt.Sprintf("[%s] Order confirmed | order_id=%s | seats=%s | quantity=%d | unit=%s | total=%s\n",
		ev.ConfirmedAt, ev.OrderID, seats, ev.Quantity, ev.UnitPrice, ev.TotalAmount)
	if _, err := io.WriteString(j.w, line); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}
	return nil
}

// Close closes the file opened by Open.  It is a no-op for journals
// built with NewJournal.
func (j *Journal) Close() error {
	if j.closer == nil {
		return nil
	}
	return j.closer.Close()
}
