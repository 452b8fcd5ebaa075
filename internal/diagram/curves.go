package diagram

import (
	"fmt"

	"github.com/alexiusacademia/gogyro/gyro"
)

// Series is one labelled curve or point set. X and Y have equal length;
// NaN entries mark points where the relation is undefined.
type Series struct {
	Label string
	X     []float64
	Y     []float64
}

// Gyrochrones evaluates rel over the color grid bv once per age, giving
// period (days) against B-V.
func Gyrochrones(rel gyro.Relation, ages, bv []float64) []Series {
	out := make([]Series, 0, len(ages))
	for _, age := range ages {
		y := make([]float64, len(bv))
		for i, b := range bv {
			y[i] = rel.Period(b, age)
		}
		out = append(out, Series{
			Label: fmt.Sprintf("%g Myr", age),
			X:     bv,
			Y:     y,
		})
	}
	return out
}
