package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/theater-seating/internal/booking"
	"github.com/iliyamo/theater-seating/internal/clock"
	"github.com/iliyamo/theater-seating/internal/ledger"
	"github.com/iliyamo/theater-seating/internal/model"
)

// PurchaseService runs the ticket purchase flow on top of the ledger.
// It validates what the customer asks for, quotes orders and commits
// confirmed orders.  The in-progress seat selection belongs to the
// caller; only a confirmed order changes ledger state.
type PurchaseService struct {
	ledger    *ledger.Ledger
	clock     clock.Clock
	publisher Publisher
}

// Option configures a PurchaseService.
type Option func(*PurchaseService)

// WithPublisher wires a publisher that receives an event for every
// confirmed order.
func WithPublisher(p Publisher) Option {
	return func(s *PurchaseService) {
		if p != nil {
			s.publisher = p
		}
	}
}

// NewPurchaseService constructs a service over l.  The ledger must be
// non-nil.
func NewPurchaseService(l *ledger.Ledger, clk clock.Clock, opts ...Option) *PurchaseService {
	if l == nil {
		panic("nil ledger passed to NewPurchaseService")
	}
	svc := &PurchaseService{
		ledger:    l,
		clock:     clk,
		publisher: discardPublisher{},
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Ledger returns the ledger the service operates on.
func (s *PurchaseService) Ledger() *ledger.Ledger { return s.ledger }

// ValidateQuantity checks that n tickets can be requested right now.
func (s *PurchaseService) ValidateQuantity(n int) error {
	if n < 1 {
		return ErrInvalidQuantity
	}
	if available := s.ledger.Statistics().AvailableTotal; n > available {
		return fmt.Errorf("%w: requested %d, %d available", ErrNotEnoughSeats, n, available)
	}
	return nil
}

// CheckSeat validates candidate against the grid, the ledger and the
// seats the customer has already picked for the current order.
func (s *PurchaseService) CheckSeat(selected []model.Seat, candidate model.Seat) error {
	row, col := candidate.Index()
	if !s.ledger.InBounds(row, col) {
		return fmt.Errorf("%w: %s", ledger.ErrSeatOutOfRange, candidate.Label())
	}
	if !s.ledger.IsAvailable(row, col) {
		return fmt.Errorf("%w: %s", ledger.ErrSeatUnavailable, candidate.Label())
	}
	if model.ContainsSeat(selected, candidate) {
		return fmt.Errorf("%w: %s", ErrAlreadySelected, candidate.Label())
	}
	return nil
}

// Quote builds a pending order for seats at the current ticket price.
// Nothing is reserved until the order is confirmed.
func (s *PurchaseService) Quote(seats []model.Seat) model.Order {
	picked := make([]model.Seat, len(seats))
	copy(picked, seats)
	return model.Order{
		ID:        uuid.NewString(),
		Seats:     picked,
		UnitPrice: s.ledger.TicketPrice(),
		Total:     s.ledger.TotalSalePrice(len(picked)),
		Status:    model.OrderPending,
	}
}

// Confirm reserves every seat of a pending order as one unit, records
// the sale and publishes a booking event.  If any seat cannot be
// reserved, nothing is reserved and no sale is recorded.
func (s *PurchaseService) Confirm(ctx context.Context, order model.Order) (model.Order, error) {
	if order.Status != model.OrderPending {
		return order, ErrOrderNotPending
	}
	if len(order.Seats) == 0 {
		return order, ErrEmptyOrder
	}
	if err := s.ledger.ReserveAll(order.Seats); err != nil {
		return order, fmt.Errorf("reserve order %s: %w", order.ID, err)
	}
	if err := s.ledger.RecordSale(order.Total); err != nil {
		return order, fmt.Errorf("record sale for order %s: %w", order.ID, err)
	}
	order.Status = model.OrderConfirmed
	order.ConfirmedAt = s.clock.Now()
	log.Printf("purchase: order %s confirmed | seats=%v | total=%s", order.ID, order.SeatLabels(), order.Total.StringFixed(2))

	publishConfirmed(ctx, s.publisher, booking.EventFromOrder(order))
	return order, nil
}

// SalesReport is what the statistics screen shows.
//
// Fields:
//  Statistics    – seat availability snapshot.
//  TicketPrice   – price of one ticket.
//  TotalSales    – sum of all recorded sales.
//  ReservedValue – value of every reserved seat at the ticket price.
type SalesReport struct {
	Statistics    model.SeatingStatistics
	TicketPrice   decimal.Decimal
	TotalSales    decimal.Decimal
	ReservedValue decimal.Decimal
}

// Report gathers the current statistics and sales figures.
func (s *PurchaseService) Report() SalesReport {
	stats := s.ledger.Statistics()
	return SalesReport{
		Statistics:    stats,
		TicketPrice:   s.ledger.TicketPrice(),
		TotalSales:    s.ledger.TotalSales(),
		ReservedValue: s.ledger.TotalSalePrice(stats.ReservedTotal),
	}
}
