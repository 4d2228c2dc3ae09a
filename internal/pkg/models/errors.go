package models

import "errors"

var (
	// ErrNotFound is returned when a broker, site, station or beacon does not exist
	ErrNotFound = errors.New("not found")
	// ErrValidation is returned when a request fails boundary validation
	ErrValidation = errors.New("validation failed")
)
