package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/theater-seating/internal/model"
)

// Ledger is the authoritative in-memory record of seat states and sales
// for one theater.  It is the only component allowed to change a seat's
// state, and it guarantees that a seat is never sold twice.  The grid
// dimensions and the ticket price are fixed when the ledger is built.
//
// Indexed accessors take 0-based (row, col) pairs.  Callers validate
// coordinates with InBounds (or RowCount/ColumnCount) first; passing
// coordinates outside the grid is a programming error and panics.
//
// A Ledger is not safe for concurrent use.  If it ever were shared,
// Reserve is the single check-then-set that would need a lock.
type Ledger struct {
	seats       [][]model.SeatState // seats[row][col]
	ticketPrice decimal.Decimal     // immutable price per ticket
	totalSales  decimal.Decimal     // running total, only ever increased
}

// New builds a ledger with rows×columns seats, all available, selling
// tickets at ticketPrice.  The reference theater uses 10 rows of 9 seats
// at 6.25.
func New(rows, columns int, ticketPrice decimal.Decimal) (*Ledger, error) {
	if rows < 1 || columns < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, columns)
	}
	if ticketPrice.IsNegative() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPrice, ticketPrice)
	}
	seats := make([][]model.SeatState, rows)
	for r := range seats {
		seats[r] = make([]model.SeatState, columns) // zero value is Available
	}
	return &Ledger{
		seats:       seats,
		ticketPrice: ticketPrice,
		totalSales:  decimal.Zero,
	}, nil
}

// RowCount returns the number of rows in the grid.
func (l *Ledger) RowCount() int { return len(l.seats) }

// ColumnCount returns the number of seats in each row.
func (l *Ledger) ColumnCount() int { return len(l.seats[0]) }

// InBounds reports whether the 0-based coordinates lie inside the grid.
func (l *Ledger) InBounds(row, col int) bool {
	return row >= 0 && row < l.RowCount() && col >= 0 && col < l.ColumnCount()
}

// State returns the state of the seat at (row, col).
func (l *Ledger) State(row, col int) model.SeatState {
	return l.seats[row][col]
}

// IsAvailable reports whether the seat at (row, col) can still be sold.
func (l *Ledger) IsAvailable(row, col int) bool {
	return l.seats[row][col] == model.Available
}

// Reserve marks the seat at (row, col) as reserved.  It returns true only
// when the seat was available; a second call for the same seat returns
// false and changes nothing.
func (l *Ledger) Reserve(row, col int) bool {
	if l.seats[row][col] != model.Available {
		return false
	}
	l.seats[row][col] = model.Reserved
	return true
}

// ReserveAll reserves a batch of 1-based seats as one unit.  Every seat
// is checked before any is changed: if one is out of range, repeated or
// already reserved, no seat in the batch is reserved.  Unavailable seats
// are reported together in an *UnavailableError.
func (l *Ledger) ReserveAll(seats []model.Seat) error {
	seen := make(map[model.Seat]struct{}, len(seats))
	var unavailable []model.Seat
	for _, s := range seats {
		row, col := s.Index()
		if !l.InBounds(row, col) {
			return fmt.Errorf("%w: %s", ErrSeatOutOfRange, s.Label())
		}
		if _, ok := seen[s]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateSeat, s.Label())
		}
		seen[s] = struct{}{}
		if !l.IsAvailable(row, col) {
			unavailable = append(unavailable, s)
		}
	}
	if len(unavailable) > 0 {
		return &UnavailableError{Seats: unavailable}
	}
	for _, s := range seats {
		l.Reserve(s.Index())
	}
	return nil
}

// Statistics scans the grid and returns a fresh snapshot of available
// and reserved counts, overall and per row.
func (l *Ledger) Statistics() model.SeatingStatistics {
	stats := model.SeatingStatistics{
		AvailableByRow: make([]int, l.RowCount()),
		ReservedByRow:  make([]int, l.RowCount()),
	}
	for r, row := range l.seats {
		for _, state := range row {
			if state == model.Available {
				stats.AvailableTotal++
				stats.AvailableByRow[r]++
			} else {
				stats.ReservedTotal++
				stats.ReservedByRow[r]++
			}
		}
	}
	return stats
}

// TicketPrice returns the price of a single ticket.
func (l *Ledger) TicketPrice() decimal.Decimal { return l.ticketPrice }

// TotalSalePrice returns the price of quantity tickets.  It is used both
// for a single order and for valuing every reserved seat in reports.
func (l *Ledger) TotalSalePrice(quantity int) decimal.Decimal {
	return l.ticketPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// RecordSale adds amount to the running sales total.  The ledger does
// not cross-check the amount against reservations; the caller passes
// the total it charged.
func (l *Ledger) RecordSale(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeAmount, amount)
	}
	l.totalSales = l.totalSales.Add(amount)
	return nil
}

// TotalSales returns the sum of every recorded sale.
func (l *Ledger) TotalSales() decimal.Decimal { return l.totalSales }
