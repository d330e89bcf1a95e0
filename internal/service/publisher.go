package service

import (
	"context"
	"log"

	"github.com/iliyamo/theater-seating/internal/booking"
)

// Publisher receives an event for every confirmed order.  The booking
// journal is the production implementation.
type Publisher interface {
	PublishBookingConfirmed(ctx context.Context, ev booking.ConfirmedEvent) error
}

type discardPublisher struct{}

func (discardPublisher) PublishBookingConfirmed(context.Context, booking.ConfirmedEvent) error {
	return nil
}

// publishConfirmed hands the event to the publisher and logs a failure.
// A confirmed sale stands even when the journal cannot be written.
func publishConfirmed(ctx context.Context, p Publisher, ev booking.ConfirmedEvent) {
	if err := p.PublishBookingConfirmed(ctx, ev); err != nil {
		log.Printf("journal: publish order %s failed: %v", ev.OrderID, err)
	}
}
