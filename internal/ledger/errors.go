// Package ledger defines error types returned by the seating ledger.
// These sentinel values allow higher layers such as the purchase service
// and the console to distinguish between different failure scenarios.
// For example, ErrSeatUnavailable indicates that a seat has already been
// sold, while ErrSeatOutOfRange signals coordinates outside the grid.
package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iliyamo/theater-seating/internal/model"
)

// ErrInvalidDimensions is returned by New when the grid would have no
// rows or no columns.
var ErrInvalidDimensions = errors.New("invalid seating dimensions")

// ErrInvalidPrice is returned by New when the ticket price is negative.
var ErrInvalidPrice = errors.New("invalid ticket price")

// ErrNegativeAmount is returned by RecordSale for a negative amount.
// Sales only ever increase; refunds are not modeled.
var ErrNegativeAmount = errors.New("sale amount must not be negative")

// ErrSeatOutOfRange is returned when a seat lies outside the grid.
var ErrSeatOutOfRange = errors.New("seat out of range")

// ErrSeatUnavailable is returned when a seat is already reserved.  The
// console translates this into "Seat requested is not available".
var ErrSeatUnavailable = errors.New("seat unavailable")

// ErrDuplicateSeat is returned by ReserveAll when the same seat appears
// twice in one batch.
var ErrDuplicateSeat = errors.New("duplicate seat in batch")

// UnavailableError lists every seat of a batch that could not be
// reserved.  It matches ErrSeatUnavailable with errors.Is.
type UnavailableError struct {
	Seats []model.Seat
}

func (e *UnavailableError) Error() string {
	labels := make([]string, 0, len(e.Seats))
	for _, s := range e.Seats {
		labels = append(labels, s.Label())
	}
	return fmt.Sprintf("%s: %s", ErrSeatUnavailable, strings.Join(labels, ","))
}

// Is lets errors.Is(err, ErrSeatUnavailable) succeed.
func (e *UnavailableError) Is(target error) bool {
	return target == ErrSeatUnavailable
}
