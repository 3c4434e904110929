package chem

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is checks against the typed errors below
var (
	ErrMissingFile     = errors.New("missing file")
	ErrUnknownIsotope  = errors.New("unknown isotope")
	ErrConflictingKeys = errors.New("conflicting composition keys")
	ErrMissingKeys     = errors.New("missing composition keys")
	ErrParse           = errors.New("parse error")
	ErrInvalidValue    = errors.New("invalid value")
)

// MissingFileError is returned when a data file is not found at any resolved path.
type MissingFileError struct {
	Paths []string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("missing data file %s", strings.Join(e.Paths, ", "))
}

// Is reports ErrMissingFile.
func (e *MissingFileError) Is(target error) bool {
	return target == ErrMissingFile
}

// UnknownIsotopeError is returned when a composition names a symbol that is not in the isotope table.
type UnknownIsotopeError struct {
	Symbol string
}

func (e *UnknownIsotopeError) Error() string {
	return fmt.Sprintf("isotope %q not present in isotope table", e.Symbol)
}

// Is reports ErrUnknownIsotope.
func (e *UnknownIsotopeError) Is(target error) bool {
	return target == ErrUnknownIsotope
}

// ConflictingKeysError is returned when a composition gives both abundances and mass fractions.
type ConflictingKeysError struct{}

func (ConflictingKeysError) Error() string {
	return fmt.Sprintf("cannot provide both %q and %q", KeyAbundances, KeyMassFractions)
}

// Is reports ErrConflictingKeys.
func (ConflictingKeysError) Is(target error) bool {
	return target == ErrConflictingKeys
}

// MissingKeysError is returned when a composition gives neither abundances nor mass fractions.
type MissingKeysError struct{}

func (MissingKeysError) Error() string {
	return fmt.Sprintf("must provide either %q or %q", KeyAbundances, KeyMassFractions)
}

// Is reports ErrMissingKeys.
func (MissingKeysError) Is(target error) bool {
	return target == ErrMissingKeys
}

// ParseError is returned when a data file cannot be decoded. Line and Field are
// zero-valued when the position is not known.
type ParseError struct {
	Path  string
	Line  int
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("failed to parse")
	if e.Path != "" {
		b.WriteString(" " + e.Path)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " line %d", e.Line)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " field %q", e.Field)
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// InvalidValueError is returned when a composition value cannot be normalized.
type InvalidValueError struct {
	Symbol string
	Value  float64
	Reason string
}

func (e *InvalidValueError) Error() string {
	if e.Symbol == "" {
		return fmt.Sprintf("invalid composition: %s (%g)", e.Reason, e.Value)
	}
	return fmt.Sprintf("invalid value %g for %q: %s", e.Value, e.Symbol, e.Reason)
}

// Is reports ErrInvalidValue.
func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}
