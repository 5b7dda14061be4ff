package simulator

import "errors"

var (
	// ErrEmptyInput is returned when the test input is empty or whitespace.
	ErrEmptyInput = errors.New("input data cannot be empty")
)
