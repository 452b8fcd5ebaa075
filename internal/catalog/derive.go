package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gogyro/convection"
	"github.com/alexiusacademia/gogyro/gyro"
	"github.com/alexiusacademia/gogyro/internal/logger"
	"github.com/alexiusacademia/gogyro/photometry"
)

// LoadFromFile loads a catalog from a .json, .yaml or .yml file
func LoadFromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	var c Catalog
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &c)
	default:
		return nil, fmt.Errorf("catalog: unsupported file type %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Source tells whether a quantity was given or derived.
type Source string

const (
	Given   Source = "given"
	Derived Source = "derived"
	Unknown Source = "-"
)

// Options selects the relations used to fill in missing quantities.
type Options struct {
	Relation gyro.Relation
	Model    convection.Model

	// Params is the fallback when neither the star nor the catalog sets
	// logg or [Fe/H].
	Params photometry.Params
}

// Result holds the derived quantities of a whole catalog
type Result struct {
	Name     string
	Relation string
	Model    string
	Stars    []StarResult
}

// StarResult holds one star's given and derived quantities.
// Unknown quantities are NaN.
type StarResult struct {
	Name   string
	Params photometry.Params

	BV     float64
	Teff   float64
	Period float64 // days
	Age    float64 // Myr
	Tau    float64 // days
	Rossby float64

	BVSource     Source
	TeffSource   Source
	PeriodSource Source
	AgeSource    Source

	Warnings []string
}

// Derive fills in every star's missing color, temperature, period or age
// and computes its turnover time and Rossby number.
func (c *Catalog) Derive(opts Options) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if opts.Relation.Period == nil || opts.Model.Tau == nil {
		return nil, errors.New("catalog: derive needs a relation and a turnover model")
	}

	res := &Result{
		Name:     c.Name,
		Relation: opts.Relation.ID,
		Model:    opts.Model.ID,
		Stars:    make([]StarResult, 0, len(c.Stars)),
	}

	for _, s := range c.Stars {
		sr := c.deriveStar(s, opts)
		for _, w := range sr.Warnings {
			logger.L().Warn("catalog.star.warning", "star", sr.Name, "warning", w)
		}
		logger.L().Debug("catalog.star.derived",
			"star", sr.Name, "bv", sr.BV, "teff", sr.Teff,
			"period", sr.Period, "age", sr.Age, "tau", sr.Tau, "rossby", sr.Rossby)
		res.Stars = append(res.Stars, sr)
	}
	return res, nil
}

func (c *Catalog) deriveStar(s Star, opts Options) StarResult {
	sr := StarResult{
		Name: s.Name,
		Params: photometry.Params{
			Logg: pick(s.Logg, c.Logg, opts.Params.Logg),
			FeH:  pick(s.FeH, c.FeH, opts.Params.FeH),
		},
		Period: math.NaN(),
		Age:    math.NaN(),
		Rossby: math.NaN(),

		PeriodSource: Unknown,
		AgeSource:    Unknown,
	}

	// Photometry
	switch {
	case s.BV != nil && s.Teff != nil:
		sr.BV, sr.BVSource = *s.BV, Given
		sr.Teff, sr.TeffSource = *s.Teff, Given
	case s.BV != nil:
		sr.BV, sr.BVSource = *s.BV, Given
		sr.Teff, sr.TeffSource = photometry.BV2Teff(sr.BV, sr.Params), Derived
	default:
		sr.Teff, sr.TeffSource = *s.Teff, Given
		sr.BV, sr.BVSource = photometry.Teff2BV(sr.Teff, sr.Params), Derived
	}

	// Gyrochronology
	rel := opts.Relation
	switch {
	case s.Period != nil && s.Age != nil:
		sr.Period, sr.PeriodSource = *s.Period, Given
		sr.Age, sr.AgeSource = *s.Age, Given
	case s.Period != nil:
		sr.Period, sr.PeriodSource = *s.Period, Given
		sr.Age, sr.AgeSource = rel.Age(sr.BV, sr.Period), Derived
	case s.Age != nil:
		sr.Age, sr.AgeSource = *s.Age, Given
		sr.Period, sr.PeriodSource = rel.Period(sr.BV, sr.Age), Derived
	}
	inDomain := rel.InDomain(sr.BV)
	if sr.AgeSource == Derived {
		inDomain = rel.AgeInDomain(sr.BV)
	}
	if (sr.PeriodSource == Derived || sr.AgeSource == Derived) && !inDomain {
		sr.Warnings = append(sr.Warnings,
			fmt.Sprintf("B-V %.3f is outside the %s domain (min %.2f)", sr.BV, rel.ID, rel.MinBV))
	}

	// Convection
	switch opts.Model.Input {
	case convection.Temperature:
		sr.Tau = opts.Model.Tau(sr.Teff)
	default:
		sr.Tau = opts.Model.Tau(sr.BV)
	}
	if sr.PeriodSource != Unknown {
		sr.Rossby = gyro.Rossby(sr.Period, sr.Tau)
	}

	for _, q := range []struct {
		name string
		v    float64
		src  Source
	}{
		{"teff", sr.Teff, sr.TeffSource},
		{"bv", sr.BV, sr.BVSource},
		{"period", sr.Period, sr.PeriodSource},
		{"age", sr.Age, sr.AgeSource},
	} {
		if q.src == Derived && (math.IsNaN(q.v) || math.IsInf(q.v, 0)) {
			sr.Warnings = append(sr.Warnings, q.name+" is undefined for this star")
		}
	}

	return sr
}

func pick(star, catalog *float64, fallback float64) float64 {
	if star != nil {
		return *star
	}
	if catalog != nil {
		return *catalog
	}
	return fallback
}
