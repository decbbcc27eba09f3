package utils

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrItineraryNotFound      = errors.New("itinerary not found")
	ErrDestinationNotFound    = errors.New("destination not found")
	ErrUpstreamUnavailable    = errors.New("upstream provider unavailable")
	ErrDatabaseError          = errors.New("database error")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected AI response")
)
