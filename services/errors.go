package services

import "errors"

var (
	ErrUnknownCategory = errors.New("unknown menu category")
	ErrUnknownLocation = errors.New("unknown delivery location")
	ErrItemUnavailable = errors.New("item not available")
	ErrEmptyOrder      = errors.New("order has no items")

	ErrInvalidHour      = errors.New("hour must be a whole number between 0 and 23")
	ErrInvalidAnswer    = errors.New("answer must be yes or no")
	ErrInvalidAmount    = errors.New("amount must be a non-negative number")
	ErrRatingNotNumber  = errors.New("rating is not a number")
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
)
