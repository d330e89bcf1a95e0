package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/iliyamo/theater-seating/internal/model"
)

type action int

const (
	actionNone action = iota
	actionDone
	actionCancel
)

// selection is the picker state: where the cursor is and which seats
// have been toggled on.  It never touches the ledger.
type selection struct {
	seating  model.SeatingView
	quantity int
	row, col int          // cursor, 0-based
	chosen   []model.Seat // in pick order
	message  string       // feedback for the last key
}

// newSelection places the cursor on the first available seat.
func newSelection(seating model.SeatingView, quantity int) *selection {
	s := &selection{seating: seating, quantity: quantity}
	for r := 0; r < seating.RowCount(); r++ {
		for c := 0; c < seating.ColumnCount(); c++ {
			if seating.State(r, c) == model.Available {
				s.row, s.col = r, c
				return s
			}
		}
	}
	return s
}

func (s *selection) complete() bool {
	return len(s.chosen) == s.quantity
}

func (s *selection) isChosen(row, col int) bool {
	return model.ContainsSeat(s.chosen, model.SeatAt(row, col))
}

// move shifts the cursor, stopping at the grid edges.
func (s *selection) move(dr, dc int) {
	s.row = clamp(s.row+dr, 0, s.seating.RowCount()-1)
	s.col = clamp(s.col+dc, 0, s.seating.ColumnCount()-1)
	s.message = ""
}

// toggle picks or un-picks the seat under the cursor.
func (s *selection) toggle() {
	seat := model.SeatAt(s.row, s.col)
	if s.seating.State(s.row, s.col) != model.Available {
		s.message = fmt.Sprintf("Seat %s is not available.", seat)
		return
	}
	for i, c := range s.chosen {
		if c == seat {
			s.chosen = append(s.chosen[:i], s.chosen[i+1:]...)
			s.message = ""
			return
		}
	}
	if s.complete() {
		s.message = fmt.Sprintf("All %d seats chosen. Press Enter to confirm.", s.quantity)
		return
	}
	s.chosen = append(s.chosen, seat)
	s.message = ""
}

// handleKey applies one key press and reports whether the picker is
// finished.
func (s *selection) handleKey(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionCancel
	case tcell.KeyUp:
		s.move(-1, 0)
	case tcell.KeyDown:
		s.move(1, 0)
	case tcell.KeyLeft:
		s.move(0, -1)
	case tcell.KeyRight:
		s.move(0, 1)
	case tcell.KeyEnter:
		if s.complete() {
			return actionDone
		}
		s.toggle()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return actionCancel
		case 'k':
			s.move(-1, 0)
		case 'j':
			s.move(1, 0)
		case 'h':
			s.move(0, -1)
		case 'l':
			s.move(0, 1)
		case ' ':
			s.toggle()
		}
	}
	return actionNone
}

// seats returns a copy of the chosen seats.
func (s *selection) seats() []model.Seat {
	out := make([]model.Seat, len(s.chosen))
	copy(out, s.chosen)
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
