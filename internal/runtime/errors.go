package runtime

import (
	"errors"
	"fmt"
)

// Error kinds reported by the VM. Match them with errors.Is.
var (
	ErrUnclosedBracket          = errors.New("unclosed bracket")
	ErrUnexpectedClosingBracket = errors.New("unexpected closing bracket")
	ErrPointerOutOfRange        = errors.New("memory pointer outside valid range")
	ErrInputExhausted           = errors.New("input exhausted")
	ErrInputOutOfRange          = errors.New("input character outside cell range")
)

// VMError is returned for every condition that aborts execution.
type VMError struct {
	Kind    error
	IP      int
	Pointer int
	Err     error
}

func (e *VMError) Error() string {
	switch e.Kind {
	case ErrPointerOutOfRange:
		return fmt.Sprintf("VM error at IP %d: %s: %d", e.IP, e.Kind, e.Pointer)
	case ErrInputExhausted, ErrInputOutOfRange:
		if e.Err != nil {
			return fmt.Sprintf("VM error at IP %d: %s: %v", e.IP, e.Kind, e.Err)
		}
	}
	return fmt.Sprintf("VM error at IP %d: %s", e.IP, e.Kind)
}

func (e *VMError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
