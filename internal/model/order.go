package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses.  An order is PENDING while the customer reviews the
// summary and becomes CONFIRMED once its seats are reserved.
const (
	OrderPending   = "PENDING"
	OrderConfirmed = "CONFIRMED"
)

// Order is one purchase in the ticketing wizard.  It aggregates the
// seats chosen by the customer together with the unit price and the
// total charged.  Orders are not stored anywhere; the ledger only keeps
// the seat states and the running sales total.
//
// Fields:
//  ID          – random identifier used in the booking journal.
//  Seats       – the seats in the order, in the order they were picked.
//  UnitPrice   – ticket price at the time the order was quoted.
//  Total       – UnitPrice multiplied by the number of seats.
//  Status      – PENDING or CONFIRMED.
//  ConfirmedAt – when the order was confirmed (zero while pending).
type Order struct {
	ID          string
	Seats       []Seat
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
	Status      string
	ConfirmedAt time.Time
}

// Quantity returns the number of tickets in the order.
func (o Order) Quantity() int {
	return len(o.Seats)
}

// SeatLabels returns the compact labels of every seat in the order.
func (o Order) SeatLabels() []string {
	labels := make([]string, 0, len(o.Seats))
	for _, s := range o.Seats {
		labels = append(labels, s.Label())
	}
	return labels
}
