package core

import "errors"

var (
	ErrEmptyRegistry    = errors.New("empty registry")
	ErrInvalidBurstTime = errors.New("invalid burst time")
	ErrInvalidQuantum   = errors.New("invalid quantum")
	ErrLengthMismatch   = errors.New("completion times do not match processes")
)
