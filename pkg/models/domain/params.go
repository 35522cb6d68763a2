package domain

import (
	"errors"
	"fmt"
)

const (
	MinYears   = 1
	MaxYears   = 5
	MinMaxRows = 1
	MaxMaxRows = 2000
)

var ErrInvalidParams = errors.New("invalid parameters")

// Params is the full input of one dataset build. Seed 0 selects a time-based seed.
type Params struct {
	Category Category
	Years    int
	MaxRows  int
	Seed     uint64
}

func (p Params) Validate() error {
	var errs []error
	if !p.Category.Valid() {
		errs = append(errs, fmt.Errorf("unknown category %q", p.Category))
	}
	if p.Years < MinYears || p.Years > MaxYears {
		errs = append(errs, fmt.Errorf("years must be between %d and %d, got %d", MinYears, MaxYears, p.Years))
	}
	if p.MaxRows < MinMaxRows || p.MaxRows > MaxMaxRows {
		errs = append(errs, fmt.Errorf("max_rows must be between %d and %d, got %d", MinMaxRows, MaxMaxRows, p.MaxRows))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidParams, errors.Join(errs...))
	}
	return nil
}
