package model

import "github.com/shopspring/decimal"

// SeatingStatistics is a point-in-time snapshot of seat availability.
// It is computed fresh by the ledger on every request and owns its
// slices, so holding on to a snapshot never observes later
// reservations.
//
// Fields:
//  AvailableTotal – number of available seats in the whole grid.
//  ReservedTotal  – number of reserved seats in the whole grid.
//  AvailableByRow – available seats per row, indexed by 0-based row.
//  ReservedByRow  – reserved seats per row, indexed by 0-based row.
type SeatingStatistics struct {
	AvailableTotal int
	ReservedTotal  int
	AvailableByRow []int
	ReservedByRow  []int
}

// Rows returns the number of rows covered by the snapshot.
func (s SeatingStatistics) Rows() int {
	return len(s.AvailableByRow)
}

// Capacity returns the total number of seats in the grid.
func (s SeatingStatistics) Capacity() int {
	return s.AvailableTotal + s.ReservedTotal
}

// OccupancyPercent returns the share of reserved seats as a percentage
// rounded to two decimal places.  An empty grid reports zero.
func (s SeatingStatistics) OccupancyPercent() decimal.Decimal {
	capacity := s.Capacity()
	if capacity == 0 {
		return decimal.Zero
	}
	reserved := decimal.NewFromInt(int64(s.ReservedTotal))
	return reserved.Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(int64(capacity)), 2)
}
