package domain

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrCatalogUnavailable indicates the food catalog could not be read.
	ErrCatalogUnavailable = errors.New("food catalog unavailable")
	// ErrMalformedRecord indicates a stored or submitted record is invalid.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrTimeout indicates a data source did not answer in time.
	ErrTimeout = errors.New("request timeout")
)
