// Package tui provides a full-screen seat picker for the purchase
// wizard.  The customer moves a cursor over the seating map and toggles
// seats instead of typing coordinates.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/iliyamo/theater-seating/internal/console"
	"github.com/iliyamo/theater-seating/internal/model"
)

// ErrCancelled is returned when the customer leaves the picker with Esc
// or q.  It is the console's cancellation sentinel, so the wizard goes
// back to the main menu.
var ErrCancelled = console.ErrPickCancelled

const (
	gridLeft = 6 // first seat column on screen, after "R n  |"
	gridTop  = 3
	cellW    = 3
)

var (
	styleText      = tcell.StyleDefault
	styleTitle     = tcell.StyleDefault.Bold(true)
	styleAvailable = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleReserved  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleChosen    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleMessage   = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// Picker implements console.SeatPicker on a tcell screen.
type Picker struct {
	newScreen func() (tcell.Screen, error)
	onReady   func(tcell.Screen) // called after Init, before the first event
}

// NewPicker returns a picker that opens the real terminal.
func NewPicker() *Picker {
	return &Picker{newScreen: tcell.NewScreen}
}

// PickSeats takes over the terminal until quantity available seats are
// chosen and confirmed, or the customer cancels.
func (p *Picker) PickSeats(ctx context.Context, seating model.SeatingView, quantity int) ([]model.Seat, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("tui: invalid quantity %d", quantity)
	}
	screen, err := p.newScreen()
	if err != nil {
		return nil, fmt.Errorf("tui: open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tui: init screen: %w", err)
	}
	defer screen.Fini()

	// PollEvent blocks, so it runs on its own goroutine; Fini makes it
	// return nil and the goroutine exits.
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	if p.onReady != nil {
		p.onReady(screen)
	}

	sel := newSelection(seating, quantity)
	for {
		draw(screen, sel)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				switch sel.handleKey(ev) {
				case actionDone:
					return sel.seats(), nil
				case actionCancel:
					return nil, ErrCancelled
				}
			}
		}
	}
}

// draw renders the title, the seat grid with the cursor and the status
// lines.
func draw(s tcell.Screen, sel *selection) {
	s.Clear()
	drawText(s, 0, 0, styleTitle, fmt.Sprintf("Choose %d seat(s): arrows/hjkl move, space toggles, enter confirms, esc cancels", sel.quantity))

	rows, cols := sel.seating.RowCount(), sel.seating.ColumnCount()
	drawText(s, 0, gridTop-1, styleText, fmt.Sprintf("%6s", "|"))
	for c := 0; c < cols; c++ {
		drawText(s, gridLeft+c*cellW, gridTop-1, styleText, fmt.Sprintf("%3d", c+1))
	}
	for r := 0; r < rows; r++ {
		y := gridTop + r
		drawText(s, 0, y, styleText, fmt.Sprintf("R %-3d|", r+1))
		for c := 0; c < cols; c++ {
			ch, style := cell(sel, r, c)
			if r == sel.row && c == sel.col {
				style = style.Reverse(true)
			}
			s.SetContent(gridLeft+c*cellW+cellW-1, y, ch, nil, style)
		}
	}

	labels := make([]string, 0, len(sel.chosen))
	for _, seat := range sel.chosen {
		labels = append(labels, seat.String())
	}
	status := fmt.Sprintf("Selected (%d/%d): %s", len(sel.chosen), sel.quantity, strings.Join(labels, " "))
	drawText(s, 0, gridTop+rows+1, styleText, status)
	if sel.message != "" {
		drawText(s, 0, gridTop+rows+2, styleMessage, sel.message)
	}
	s.Show()
}

// cell returns the symbol and style for one seat.
func cell(sel *selection, row, col int) (rune, tcell.Style) {
	switch {
	case sel.isChosen(row, col):
		return '@', styleChosen
	case sel.seating.State(row, col) == model.Reserved:
		return model.Reserved.Symbol(), styleReserved
	}
	return model.Available.Symbol(), styleAvailable
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
