package catalog

import (
	"fmt"
	"math"
)

// Catalog is a named list of stars read from a YAML or JSON file.
// Logg and FeH, when set, apply to every star that does not carry its own.
type Catalog struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	Logg *float64 `json:"logg,omitempty" yaml:"logg,omitempty"`
	FeH  *float64 `json:"feh,omitempty" yaml:"feh,omitempty"`

	Stars []Star `json:"stars" yaml:"stars"`
}

// Star holds whatever is known about one star. Nil fields are derived.
type Star struct {
	Name string `json:"name" yaml:"name"`

	// Photometry: at least one of BV and Teff is required
	BV   *float64 `json:"bv,omitempty" yaml:"bv,omitempty"`
	Teff *float64 `json:"teff,omitempty" yaml:"teff,omitempty"` // K

	Logg *float64 `json:"logg,omitempty" yaml:"logg,omitempty"`
	FeH  *float64 `json:"feh,omitempty" yaml:"feh,omitempty"`

	Period *float64 `json:"period,omitempty" yaml:"period,omitempty"` // days
	Age    *float64 `json:"age,omitempty" yaml:"age,omitempty"`       // Myr
}

// Validate checks if the catalog definition is usable
func (c *Catalog) Validate() error {
	if len(c.Stars) == 0 {
		return &ValidationError{"catalog must have at least one star"}
	}
	for i, s := range c.Stars {
		if s.Name == "" {
			return &ValidationError{fmt.Sprintf("star %d must have a name", i+1)}
		}
		if s.BV == nil && s.Teff == nil {
			return &ValidationError{fmt.Sprintf("star %q needs bv or teff", s.Name)}
		}
		for _, q := range []struct {
			name     string
			v        *float64
			positive bool
		}{
			{"bv", s.BV, false},
			{"teff", s.Teff, true},
			{"logg", s.Logg, false},
			{"feh", s.FeH, false},
			{"period", s.Period, true},
			{"age", s.Age, true},
		} {
			if q.v == nil {
				continue
			}
			v := *q.v
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return &ValidationError{fmt.Sprintf("star %q: %s must be finite", s.Name, q.name)}
			}
			if q.positive && v <= 0 {
				return &ValidationError{fmt.Sprintf("star %q: %s must be positive", s.Name, q.name)}
			}
		}
	}
	return nil
}

// ValidationError represents a catalog validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
