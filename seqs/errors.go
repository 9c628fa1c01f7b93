package seqs

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every ArgumentError.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports a programmer error detected when a combinator is called,
// before any element is pulled from the source.
//
// Combinators panic with an *ArgumentError. Recover it and use errors.Is with
// ErrInvalidArgument to tell it apart from panics raised by caller code.
type ArgumentError struct {
	Op     string // e.g. "seqs.ChunkBefore"
	Arg    string // parameter name
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s %s", e.Op, e.Arg, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func nilArg(op, arg string) *ArgumentError {
	return &ArgumentError{Op: op, Arg: arg, Reason: "cannot be nil"}
}
