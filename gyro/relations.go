package gyro

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRelation is returned by LookupRelation for an unregistered ID.
var ErrUnknownRelation = errors.New("gyro: unknown relation")

// Relation is a registered age-period relation together with its inverse.
type Relation struct {
	ID          string
	Description string
	Citation    string

	// MinBV is the color at which the relation's fractional power or square
	// root reaches zero. InclusiveMin reports whether MinBV itself is valid
	// for Period; Age never is, since the period there does not depend on age.
	MinBV        float64
	InclusiveMin bool

	Period func(bv, ageMyr float64) float64
	Age    func(bv, periodDays float64) float64
}

// Relations lists every age-period relation, Angus2015 first as the default.
var Relations = []Relation{
	{
		ID:          "angus2015",
		Description: "P = A^0.55 * 0.4 * (B-V - 0.45)^0.31",
		Citation:    "Angus et al. (2015) Eqn 15",
		MinBV:       angusC,
		Period:      Angus2015,
		Age:         Angus2015Age,
	},
	{
		ID:           "mm09e2",
		Description:  "P = sqrt(A) * sqrt(B-V - 0.5) - 0.15 * (B-V - 0.5)",
		Citation:     "Meibom, Mathieu & Stassun (2009) Eqn 2",
		MinBV:        mm09e2C,
		InclusiveMin: true,
		Period:       MM09e2,
		Age:          MM09e2Age,
	},
	{
		ID:          "mm09e3",
		Description: "P = A^0.52 * 0.77 * (B-V - 0.4)^0.6",
		Citation:    "Meibom, Mathieu & Stassun (2009) Eqn 3",
		MinBV:       mm09e3C,
		Period:      MM09e3,
		Age:         MM09e3Age,
	},
}

// DefaultRelation is the ID used when none is configured.
const DefaultRelation = "angus2015"

// LookupRelation finds a relation by ID, ignoring case.
func LookupRelation(id string) (Relation, error) {
	for _, r := range Relations {
		if strings.EqualFold(r.ID, id) {
			return r, nil
		}
	}
	return Relation{}, fmt.Errorf("%w: %q", ErrUnknownRelation, id)
}

// RelationIDs returns the registered IDs in registry order.
func RelationIDs() []string {
	ids := make([]string, len(Relations))
	for i, r := range Relations {
		ids[i] = r.ID
	}
	return ids
}

// InDomain reports whether bv lies in the color range where the relation
// yields a real period.
func (r Relation) InDomain(bv float64) bool {
	if r.InclusiveMin {
		return bv >= r.MinBV
	}
	return bv > r.MinBV
}

// AgeInDomain reports whether bv lies in the color range where the inverse
// relation yields a finite age. MinBV is always excluded.
func (r Relation) AgeInDomain(bv float64) bool {
	return bv > r.MinBV
}
