package events

import "errors"

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrEventNotFound = errors.New("event not found")
)
