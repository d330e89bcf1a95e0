// Package console implements the menu-driven terminal front end of the
// theater: the main menu, the ticket purchase wizard, the seating map
// and the statistics screen.  It reads one line of input at a time and
// re-prompts on anything it cannot use; only confirmed orders reach the
// ledger.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/iliyamo/theater-seating/internal/model"
	"github.com/iliyamo/theater-seating/internal/service"
)

// Main menu choices.
const (
	menuPurchase = 1
	menuSeatMap  = 2
	menuStats    = 3
	menuQuit     = 4
)

// SeatPicker chooses quantity seats for one order.  The console's own
// prompt picker is used when none is configured.
type SeatPicker interface {
	PickSeats(ctx context.Context, seating model.SeatingView, quantity int) ([]model.Seat, error)
}

// ErrPickCancelled is returned by a SeatPicker when the customer backs
// out of seat selection.  The wizard then returns to the main menu.
var ErrPickCancelled = errors.New("seat selection cancelled")

// Console is one interactive session.
type Console struct {
	svc      *service.PurchaseService
	in       *bufio.Reader
	out      io.Writer
	errOut   io.Writer
	currency string
	clear    bool
	picker   SeatPicker
}

// Option configures a Console.
type Option func(*Console)

// WithErrorOutput sends validation messages to w instead of the main
// output.
func WithErrorOutput(w io.Writer) Option {
	return func(c *Console) { c.errOut = w }
}

// WithCurrency sets the symbol printed in front of amounts.
func WithCurrency(symbol string) Option {
	return func(c *Console) { c.currency = symbol }
}

// WithClearScreen clears the terminal before every screen.  Only enable
// it when the output is a terminal.
func WithClearScreen(on bool) Option {
	return func(c *Console) { c.clear = on }
}

// WithSeatPicker replaces the prompt-based seat selection.
func WithSeatPicker(p SeatPicker) Option {
	return func(c *Console) { c.picker = p }
}

// New creates a console session reading from in and writing to out.
func New(svc *service.PurchaseService, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		svc:      svc,
		in:       bufio.NewReader(in),
		out:      out,
		errOut:   out,
		currency: "$",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run shows the main menu until the user quits, the input ends or ctx is
// cancelled.  Reaching the end of input is a normal way to finish and
// returns nil.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		choice, err := c.mainMenu()
		if err == nil {
			switch choice {
			case menuPurchase:
				err = c.purchaseScreen(ctx)
			case menuSeatMap:
				err = c.seatMapScreen()
			case menuStats:
				err = c.statsScreen()
			case menuQuit:
				fmt.Fprintln(c.out, "\nThe program will now exit.")
				return nil
			}
		}
		if errors.Is(err, io.EOF) {
			log.Printf("console: input closed, ending session")
			fmt.Fprintln(c.out)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// mainMenu prints the menu and returns a valid choice.
func (c *Console) mainMenu() (int, error) {
	for {
		c.header("MAIN MENU")
		printLines(c.out,
			"(1) - Purchase Ticket(s)",
			"(2) - View Seating Map",
			"(3) - View Statistics",
			"(4) - Quit",
			"",
		)
		fmt.Fprint(c.out, "Please enter a menu selection [1-4]: ")
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		if n, ok := parseInt(line); ok && n >= menuPurchase && n <= menuQuit {
			return n, nil
		}
	}
}

// pause waits for Enter before going back to the main menu.
func (c *Console) pause() error {
	fmt.Fprint(c.out, "\nReturning to the main menu. Press Enter to continue...")
	_, err := c.readLine()
	return err
}

// errorf prints a validation message followed by a blank line.
func (c *Console) errorf(format string, args ...any) {
	fmt.Fprintf(c.errOut, "Error: "+format+"\n\n", args...)
}
