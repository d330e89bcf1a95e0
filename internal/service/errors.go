package service

import "errors"

var (
	ErrInvalidQuantity = errors.New("invalid ticket quantity")
	ErrNotEnoughSeats  = errors.New("not enough seats available")
	ErrAlreadySelected = errors.New("seat already selected")
	ErrEmptyOrder      = errors.New("order has no seats")
	ErrOrderNotPending = errors.New("order is not pending")
)
