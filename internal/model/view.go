package model

// SeatingView is the read-only view of a seating grid used by anything
// that draws or browses seats.  Coordinates are 0-based.
type SeatingView interface {
	RowCount() int
	ColumnCount() int
	State(row, col int) SeatState
}
