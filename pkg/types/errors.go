package types

import "errors"

// ErrInvalidArgument is returned when a calculation is called with inputs that
// violate its preconditions. Callers should match it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")
