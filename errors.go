package qdex

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by errors returned for malformed input:
// negative ids, control bytes in text, malformed query words, or a
// document id that already exists.
var ErrInvalidArgument = errors.New("qdex: invalid argument")

// ErrOutOfRange is wrapped by errors returned when an operation is given a
// document id that does not currently exist in the engine.
var ErrOutOfRange = errors.New("qdex: out of range")

func invalidArgument(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrInvalidArgument)
}

func outOfRange(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrOutOfRange)
}
