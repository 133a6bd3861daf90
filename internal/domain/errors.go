package domain

import "errors"

var (
	ErrNotFound               = errors.New("not found")
	ErrUpstreamUnavailable    = errors.New("upstream unavailable")
	ErrAllStrategiesExhausted = errors.New("all strategies exhausted")
	ErrInvalidInput           = errors.New("invalid input")
	ErrStorageUnavailable     = errors.New("storage unavailable")
)
