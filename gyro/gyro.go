package gyro

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gogyro/vec"
)

// Angus et al. (2015), MNRAS 450, 1787, Eqn 15: P = A^n * a * (B-V - c)^b
const (
	angusN = 0.55
	angusA = 0.4
	angusB = 0.31
	angusC = 0.45
)

// Meibom, Mathieu & Stassun (2009), ApJ 695, 679 (MM09). Eqn 2 restates the
// Barnes (2003) interface sequence, Eqn 3 the Barnes (2007) gyrochrone.
const (
	// Eqn 2 color offset and linear correction
	mm09e2C = 0.50
	mm09e2K = 0.15

	// Eqn 3: P = A^n * a * (B-V - c)^b
	mm09e3N = 0.52
	mm09e3A = 0.77
	mm09e3B = 0.60
	mm09e3C = 0.40
)

// Angus2015 returns the rotation period (days) of a star with color bv and
// age ageMyr.
func Angus2015(bv, ageMyr float64) float64 {
	return math.Pow(ageMyr, angusN) * angusA * math.Pow(bv-angusC, angusB)
}

// Angus2015Age inverts Angus2015, returning the age (Myr) of a star with
// color bv rotating with period periodDays.
func Angus2015Age(bv, periodDays float64) float64 {
	return math.Pow(periodDays/(angusA*math.Pow(bv-angusC, angusB)), 1/angusN)
}

// MM09e2 is Eqn 2 of MM09:
// P = sqrt(age) * sqrt(B-V - 0.5) - 0.15 * (B-V - 0.5).
func MM09e2(bv, ageMyr float64) float64 {
	x := bv - mm09e2C
	return math.Sqrt(ageMyr)*math.Sqrt(x) - mm09e2K*x
}

// MM09e2Age inverts MM09e2. It is NaN for B-V <= 0.5, where every age
// maps to a zero period.
func MM09e2Age(bv, periodDays float64) float64 {
	x := bv - mm09e2C
	if !(x > 0) {
		return math.NaN()
	}
	s := periodDays + mm09e2K*x
	return s * s / x
}

// MM09e3 is Eqn 3 of MM09:
// P = age^0.52 * 0.77 * (B-V - 0.4)^0.6.
func MM09e3(bv, ageMyr float64) float64 {
	return math.Pow(ageMyr, mm09e3N) * mm09e3A * math.Pow(bv-mm09e3C, mm09e3B)
}

// MM09e3Age inverts MM09e3.
func MM09e3Age(bv, periodDays float64) float64 {
	return math.Pow(periodDays/(mm09e3A*math.Pow(bv-mm09e3C, mm09e3B)), 1/mm09e3N)
}

// Rossby returns the Rossby number P/tau for a rotation period and a
// convective turnover timescale in the same units.
func Rossby(periodDays, tauDays float64) float64 {
	return periodDays / tauDays
}

// Angus2015Slice is the element-wise form of Angus2015.
func Angus2015Slice(bv, ageMyr []float64) ([]float64, error) {
	return apply("angus2015", bv, ageMyr, Angus2015)
}

// Angus2015AgeSlice is the element-wise form of Angus2015Age.
func Angus2015AgeSlice(bv, periodDays []float64) ([]float64, error) {
	return apply("angus2015 age", bv, periodDays, Angus2015Age)
}

// MM09e2Slice is the element-wise form of MM09e2.
func MM09e2Slice(bv, ageMyr []float64) ([]float64, error) {
	return apply("mm09e2", bv, ageMyr, MM09e2)
}

// MM09e2AgeSlice is the element-wise form of MM09e2Age.
func MM09e2AgeSlice(bv, periodDays []float64) ([]float64, error) {
	return apply("mm09e2 age", bv, periodDays, MM09e2Age)
}

// MM09e3Slice is the element-wise form of MM09e3.
func MM09e3Slice(bv, ageMyr []float64) ([]float64, error) {
	return apply("mm09e3", bv, ageMyr, MM09e3)
}

// MM09e3AgeSlice is the element-wise form of MM09e3Age.
func MM09e3AgeSlice(bv, periodDays []float64) ([]float64, error) {
	return apply("mm09e3 age", bv, periodDays, MM09e3Age)
}

// RossbySlice is the element-wise form of Rossby.
func RossbySlice(periodDays, tauDays []float64) ([]float64, error) {
	return apply("rossby", periodDays, tauDays, Rossby)
}

func apply(op string, a, b []float64, f func(x, y float64) float64) ([]float64, error) {
	out, err := vec.Map2(a, b, f)
	if err != nil {
		return nil, fmt.Errorf("gyro: %s: %w", op, err)
	}
	return out, nil
}
