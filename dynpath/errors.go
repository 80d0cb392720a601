package dynpath

import "errors"

// ErrConfig is returned when a referenced section or key cannot be read from the configuration.
var ErrConfig = errors.New("configuration entry unavailable")

// ErrFormat is returned when variable or reference markers in a value are malformed.
var ErrFormat = errors.New("malformed path template")

// ErrArgument is returned when binding values do not match the outstanding variables.
var ErrArgument = errors.New("binding values do not match variables")

// ErrNotFound is returned when a filesystem query targets a path that has unbound
// variables or does not exist.
var ErrNotFound = errors.New("path does not exist")

// ErrCycle is returned when references form a loop.
var ErrCycle = errors.New("cyclic reference")
