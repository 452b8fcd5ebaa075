package convection

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownModel is returned by LookupModel for an unregistered ID.
var ErrUnknownModel = errors.New("convection: unknown model")

// Input names the quantity a model takes.
type Input int

const (
	ColorIndex  Input = iota // B-V
	Temperature              // Teff in K
)

func (in Input) String() string {
	switch in {
	case ColorIndex:
		return "B-V"
	case Temperature:
		return "Teff"
	}
	return fmt.Sprintf("Input(%d)", int(in))
}

// Model is a registered turnover-time relation.
type Model struct {
	ID          string
	Description string
	Citation    string
	Input       Input
	Tau         func(float64) float64
}

// Models lists every turnover-time relation, Noyes first as the default.
var Models = []Model{
	{
		ID:          "noyes1984",
		Description: "piecewise cubic in 1 - (B-V) for log tau",
		Citation:    "Noyes et al. (1984) Eqn 4",
		Input:       ColorIndex,
		Tau:         Noyes1984Eqn4,
	},
	{
		ID:          "wright2011",
		Description: "quadratic in B-V for log tau",
		Citation:    "Wright et al. (2011) Table 2 fit",
		Input:       ColorIndex,
		Tau:         Wright2011Tau,
	},
	{
		ID:          "cranmersaar2011",
		Description: "exponential in Teff with 0.002 d floor",
		Citation:    "Cranmer & Saar (2011) Eqn 36",
		Input:       Temperature,
		Tau:         CranmerSaar2011Eqn36,
	},
}

// DefaultModel is the ID used when none is configured.
const DefaultModel = "noyes1984"

// LookupModel finds a model by ID, ignoring case.
func LookupModel(id string) (Model, error) {
	for _, m := range Models {
		if strings.EqualFold(m.ID, id) {
			return m, nil
		}
	}
	return Model{}, fmt.Errorf("%w: %q", ErrUnknownModel, id)
}

// ModelIDs returns the registered IDs in registry order.
func ModelIDs() []string {
	ids := make([]string, len(Models))
	for i, m := range Models {
		ids[i] = m.ID
	}
	return ids
}
