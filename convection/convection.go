// Package convection estimates the convective turnover timescale tau (days)
// of a cool star from its B-V color or effective temperature.
//
// tau is the denominator of the Rossby number Ro = P/tau used throughout
// activity-rotation studies.
package convection

import (
	"math"

	"github.com/alexiusacademia/gogyro/vec"
)

// Noyes et al. (1984), ApJ 279, 763, Eqn 4, in x = 1 - (B-V)
const (
	noyesLogTau0 = 1.362
	noyesBlue    = -0.14 // x < 0
	noyesX1      = -0.166
	noyesX2      = 0.025
	noyesX3      = -5.323
)

// wrightCoeffs is a quadratic in B-V, highest power first, fit to the
// Wright et al. (2011), ApJ 743, 48, Table 2 calibration.
var wrightCoeffs = [...]float64{0.51138488, -0.24907552, 1.00734295}

// Cranmer & Saar (2011), ApJ 741, 54, Eqn 36
const (
	csScale  = 314.24
	csTeff1  = 1952.5
	csTeff2  = 6250.0
	csPower  = 18
	csFloorD = 0.002
)

// Noyes1984Eqn4 returns tau for color bv. Colors bluer than B-V = 1 use the
// cubic; redder ones use the linear branch. B-V = 1 itself takes the cubic,
// where both branches give log tau = 1.362.
func Noyes1984Eqn4(bv float64) float64 {
	x := 1 - bv

	var logTau float64
	if x < 0 {
		logTau = noyesLogTau0 + noyesBlue*x
	} else {
		logTau = noyesLogTau0 + x*(noyesX1+x*(noyesX2+x*noyesX3))
	}
	return math.Pow(10, logTau)
}

// Wright2011Tau returns tau for color bv.
func Wright2011Tau(bv float64) float64 {
	return math.Pow(10, polyval(wrightCoeffs[:], bv))
}

// CranmerSaar2011Eqn36 returns tau for effective temperature teff (K).
// The (Teff/6250)^18 term only matters above ~6000 K, where it drives tau
// down to the 0.002 day floor.
func CranmerSaar2011Eqn36(teff float64) float64 {
	return csScale*math.Exp(-(teff/csTeff1)-math.Pow(teff/csTeff2, csPower)) + csFloorD
}

// Noyes1984Eqn4Slice evaluates Noyes1984Eqn4 for each color, choosing the
// branch per element.
func Noyes1984Eqn4Slice(bv []float64) []float64 {
	return vec.Map(bv, Noyes1984Eqn4)
}

// Wright2011TauSlice evaluates Wright2011Tau for each color.
func Wright2011TauSlice(bv []float64) []float64 {
	return vec.Map(bv, Wright2011Tau)
}

// CranmerSaar2011Eqn36Slice evaluates CranmerSaar2011Eqn36 for each
// temperature.
func CranmerSaar2011Eqn36Slice(teff []float64) []float64 {
	return vec.Map(teff, CranmerSaar2011Eqn36)
}

// polyval evaluates a polynomial with coefficients ordered from the highest
// power down, using Horner's scheme.
func polyval(c []float64, x float64) float64 {
	var y float64
	for _, ci := range c {
		y = y*x + ci
	}
	return y
}
