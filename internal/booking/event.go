// Package booking defines the booking-confirmed event and the journal
// that records it.
package booking

import "github.com/iliyamo/theater-seating/internal/model"

// ConfirmedEvent is published when an order is successfully confirmed.
// It carries enough information for the journal to describe the sale
// without looking anything up in the ledger.
type ConfirmedEvent struct {
	OrderID     string   `json:"order_id"`
	SeatLabels  []string `json:"seats"`
	Quantity    int      `json:"quantity"`
	UnitPrice   string   `json:"unit_price"`
	TotalAmount string   `json:"total_amount"`
	ConfirmedAt string   `json:"confirmed_at"`
}

// EventFromOrder builds the event for a confirmed order.  Amounts are
// rendered with two decimal places.
func EventFromOrder(o model.Order) ConfirmedEvent {
	return ConfirmedEvent{
		OrderID:     o.ID,
		SeatLabels:  o.SeatLabels(),
		Quantity:    o.Quantity(),
		UnitPrice:   o.UnitPrice.StringFixed(2),
		TotalAmount: o.Total.StringFixed(2),
		ConfirmedAt: o.ConfirmedAt.UTC().Format(timeLayout),
	}
}
