package model

import "fmt"

// Seat identifies one bookable seat in the theater by its row and
// column.  Both coordinates are 1-based because they come straight from
// the customer ("row 2, seat 5").  Seats compare by value, so two Seat
// values with the same coordinates are the same seat; the purchase flow
// relies on this to reject a seat that is already in the customer's
// in-progress selection.
//
// Fields:
//  Row    – row number, starting at 1.
//  Column – seat number within the row, starting at 1.
type Seat struct {
	Row    int // 1-based row
	Column int // 1-based column
}

// Index converts the seat into the 0-based (row, column) pair used by
// the ledger's indexed accessors.
func (s Seat) Index() (int, int) {
	return s.Row - 1, s.Column - 1
}

// Label returns the compact form used in logs and the booking journal,
// e.g. "R2C5".
func (s Seat) Label() string {
	return fmt.Sprintf("R%dC%d", s.Row, s.Column)
}

// String renders the seat the way the order summary shows it.
func (s Seat) String() string {
	return fmt.Sprintf("[R%d, C%d]", s.Row, s.Column)
}

// SeatAt builds a Seat from 0-based ledger indices.
func SeatAt(row, col int) Seat {
	return Seat{Row: row + 1, Column: col + 1}
}

// ContainsSeat reports whether seat is already present in seats.
func ContainsSeat(seats []Seat, seat Seat) bool {
	for _, s := range seats {
		if s == seat {
			return true
		}
	}
	return false
}
