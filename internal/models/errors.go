package models

import (
	"errors"
)

var (
	ErrProviderNotFound    = errors.New("models: provider not found")
	ErrBookingNotFound     = errors.New("models: booking not found")
	ErrReviewNotFound      = errors.New("models: review not found")
	ErrDuplicatePhone      = errors.New("models: duplicate phone number")
	ErrAlreadyReviewed     = errors.New("models: booking already reviewed")
	ErrBookingNotCompleted = errors.New("models: booking is not completed")
	ErrInvalidTransition   = errors.New("models: invalid status transition")
	ErrInvalidStatus       = errors.New("models: unknown booking status")
	ErrInvalidCoordinates  = errors.New("models: coordinates out of range")
	ErrInvalidCategory     = errors.New("models: unknown service category")
	ErrEmptyCategories     = errors.New("models: at least one service category required")
	ErrInvalidPrice        = errors.New("models: price must be positive")
	ErrInvalidRating       = errors.New("models: rating must be between 1 and 5")
	ErrInvalidComment      = errors.New("models: comment is empty or too long")
	ErrMissingFields       = errors.New("models: required field is blank")
)
