package generator

import "errors"

// Sampling and catalog errors. Any of these aborts the generation run; a
// partial dataset is recovered by wiping and rerunning, never by resuming.
var (
	// ErrEmptyCatalog is returned when sampling from an empty catalog.
	ErrEmptyCatalog = errors.New("catalog is empty")

	// ErrInvalidRange is returned for malformed min/max or start/end bounds.
	ErrInvalidRange = errors.New("invalid range")

	// ErrInsufficientCatalog is returned when a distinct sample is requested
	// from a catalog smaller than the requested count.
	ErrInsufficientCatalog = errors.New("catalog too small for distinct sample")

	// ErrUnknownCategory is returned when an expense category has no
	// configured amount range.
	ErrUnknownCategory = errors.New("expense category has no amount range")
)
