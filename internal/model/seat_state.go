package model

// SeatState is the availability of a single seat.  A seat is always in
// exactly one of the two states; there is no held or pending state in
// the ledger.  Selections that have not been confirmed live only in the
// purchase flow.
type SeatState uint8

const (
	// Available marks a seat that can still be sold.
	Available SeatState = iota
	// Reserved marks a sold seat.  Reservation is one-way.
	Reserved
)

// String returns the status name used in logs (FREE or RESERVED).
func (s SeatState) String() string {
	switch s {
	case Available:
		return "FREE"
	case Reserved:
		return "RESERVED"
	}
	return "UNKNOWN"
}

// Symbol returns the character drawn on the seating map: '#' for an
// available seat and '*' for a reserved one.
func (s SeatState) Symbol() rune {
	if s == Reserved {
		return '*'
	}
	return '#'
}
