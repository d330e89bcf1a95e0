package console

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/iliyamo/theater-seating/internal/ledger"
	"github.com/iliyamo/theater-seating/internal/model"
	"github.com/iliyamo/theater-seating/internal/service"
)

const purchaseTitle = "TICKETING PURCHASE"

// purchaseScreen walks the customer through the four purchase steps:
// quantity, seat selection, order summary and confirmation.  Declining
// the order starts the wizard over; confirming it reserves the seats and
// records the sale.
func (c *Console) purchaseScreen(ctx context.Context) error {
	for {
		available := c.svc.Ledger().Statistics().AvailableTotal
		if available == 0 {
			c.header(purchaseTitle)
			fmt.Fprintln(c.out, "All seats are sold out. No tickets can be purchased.")
			return c.pause()
		}

		// Step 1 of 4: how many tickets.
		quantity, err := c.requestQuantity(available)
		if err != nil {
			return err
		}

		// Step 2 of 4: which seats.
		seats, err := c.pickSeats(ctx, quantity)
		if errors.Is(err, ErrPickCancelled) {
			c.header(purchaseTitle)
			fmt.Fprintln(c.out, "Seat selection cancelled. No seats were reserved.")
			return c.pause()
		}
		if err != nil {
			return err
		}

		// Step 3 of 4: order summary.
		order := c.svc.Quote(seats)
		c.header(purchaseTitle)
		fmt.Fprint(c.out, "Below is a summary of your order. Please review the details and ensure everything is correct.\n\n")
		RenderOrderSummary(c.out, c.currency, order)

		// Step 4 of 4: confirmation.
		fmt.Fprint(c.out, "Would you like to place your order? [y/n]: ")
		line, err := c.readLine()
		if err != nil {
			return err
		}
		if !confirmed(line) {
			log.Printf("console: order %s declined, restarting wizard", order.ID)
			continue
		}

		order, err = c.svc.Confirm(ctx, order)
		if err != nil {
			c.errorf("%s", confirmFailure(err))
			continue
		}

		c.header(purchaseTitle)
		printLines(c.out,
			"ORDER PROCESSED SUCCESSFULLY",
			"Your seats have now been reserved, thank you for your business.",
		)
		fmt.Fprintf(c.out, "Order ID: %s\n", order.ID)
		RenderSeatMap(c.out, c.svc.Ledger())
		return c.pause()
	}
}

// requestQuantity asks for a ticket count between 1 and available.
func (c *Console) requestQuantity(available int) (int, error) {
	c.header(purchaseTitle)
	fmt.Fprint(c.out, "Welcome to the ticket purchasing wizard. Just follow the prompts below to proceed.\n\n")
	for {
		fmt.Fprintf(c.out, "How many tickets do you need [%d available]: ", available)
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		n, ok := parseInt(line)
		if ok && c.svc.ValidateQuantity(n) == nil {
			return n, nil
		}
		c.errorf("Quantity requested is not available or you entered an invalid amount.")
	}
}

// pickSeats delegates to the configured picker, or asks for each seat
// at the prompt.
func (c *Console) pickSeats(ctx context.Context, quantity int) ([]model.Seat, error) {
	if c.picker != nil {
		seats, err := c.picker.PickSeats(ctx, c.svc.Ledger(), quantity)
		if err != nil {
			return nil, err
		}
		if len(seats) != quantity {
			return nil, fmt.Errorf("seat picker returned %d seats, want %d", len(seats), quantity)
		}
		return seats, nil
	}
	return c.promptSeats(quantity)
}

// promptSeats asks for a seat for every ticket, rejecting seats that are
// outside the grid, already reserved or already picked for this order.
// Picked seats are held only in the returned slice.
func (c *Console) promptSeats(quantity int) ([]model.Seat, error) {
	c.header(purchaseTitle)
	fmt.Fprint(c.out, "Look at the seat selection map to see what seats are available for your choosing.\n\n")
	fmt.Fprintln(c.out, "Seat Selection Map - [#] available, [*] reserved")
	RenderSeatMap(c.out, c.svc.Ledger())
	fmt.Fprintln(c.out)

	selected := make([]model.Seat, 0, quantity)
	for len(selected) < quantity {
		fmt.Fprintf(c.out, "Choose a seat for ticket %d of %d (i.e. 2 5): ", len(selected)+1, quantity)
		line, err := c.readLine()
		if err != nil {
			return nil, err
		}
		seat, ok := parseSeat(line)
		if !ok {
			c.errorf("Enter a row and a seat number separated by a space, e.g. 2 5.")
			continue
		}
		if err := c.svc.CheckSeat(selected, seat); err != nil {
			c.errorf("%s", seatFailure(err, c.svc.Ledger()))
			continue
		}
		selected = append(selected, seat)
	}
	return selected, nil
}

// seatFailure turns a CheckSeat error into the message shown to the
// customer.
func seatFailure(err error, l *ledger.Ledger) string {
	switch {
	case errors.Is(err, ledger.ErrSeatOutOfRange):
		return fmt.Sprintf("Seat location is invalid. Rows are 1-%d and seats are 1-%d.", l.RowCount(), l.ColumnCount())
	case errors.Is(err, ledger.ErrSeatUnavailable):
		return "Seat requested is not available."
	case errors.Is(err, service.ErrAlreadySelected):
		return "Seat requested is already part of this order."
	}
	return err.Error()
}

// confirmFailure explains why a confirmed order could not be placed.
func confirmFailure(err error) string {
	if errors.Is(err, ledger.ErrSeatUnavailable) {
		return "One or more seats were reserved before your order was placed. Please choose again."
	}
	return fmt.Sprintf("Your order could not be placed: %v", err)
}
