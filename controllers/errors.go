package controllers

import "errors"

var (
	ErrInvalidSeats    = errors.New("seats must be at least 1")
	ErrTableInactive   = errors.New("table is not active for guest ordering")
	ErrEmptyBatch      = errors.New("position batch must not be empty")
	ErrSessionNotFound = errors.New("floor plan session not found")
)
