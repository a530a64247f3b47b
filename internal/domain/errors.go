package domain

import "errors"

var (
	ErrEmptySeries          = errors.New("no observations available")
	ErrInvalidObservation   = errors.New("invalid observation")
	ErrUnknownIndicatorType = errors.New("unknown indicator type")
)
