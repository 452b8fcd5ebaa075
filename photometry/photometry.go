// Package photometry converts between B-V color and effective temperature
// with the Sekiguchi & Fukugita (2000), AJ 120, 1072, calibrations.
//
// Teff2BV and BV2Teff are two independently fitted polynomials, not algebraic
// inverses of each other. Chaining them reproduces the starting temperature
// to within a few percent over 4000-6500 K, and the starting color to within
// about 0.06 mag over 0.5 < B-V < 1.4. Callers that need exact round trips
// should keep the value they started from.
package photometry

import (
	"math"

	"github.com/alexiusacademia/gogyro/vec"
)

// Params carries the surface gravity and metallicity terms of both fits.
type Params struct {
	Logg float64 // log10 g, cgs
	FeH  float64 // [Fe/H], dex
}

// Solar-like defaults used by the calibrations.
const (
	DefaultLogg = 4.3
	DefaultFeH  = 0.0
)

// DefaultParams returns Params{Logg: 4.3, FeH: 0}.
func DefaultParams() Params {
	return Params{Logg: DefaultLogg, FeH: DefaultFeH}
}

// Teff2BV coefficients: cubic in log Teff plus metallicity and gravity terms
var (
	teffPoly = [...]float64{-813.3175, 684.4585, -189.923, 17.40875}
	teffFeH  = [...]float64{1.2136, 0.0209}
)

const (
	teffFeHLogT  = -0.294 // d1, [Fe/H] * log Teff
	teffLogg     = -1.166 // g1
	teffLoggLogT = 0.3156 // e1, logg * log Teff
)

// BV2Teff coefficients: cubic in B-V for log Teff plus metallicity and gravity terms
var (
	bvPoly = [...]float64{3.939654, -0.395361, 0.2082113, -0.0604097}
	bvFeH  = [...]float64{0.027153, 0.005036}
	bvLogg = [...]float64{0.007367, -0.01069} // logg, (B-V) * logg
)

// Teff2BV returns the B-V color of a star with effective temperature teff (K).
func Teff2BV(teff float64, p Params) float64 {
	lt := math.Log10(teff)
	return cubic(teffPoly, lt) +
		teffFeH[0]*p.FeH + teffFeH[1]*p.FeH*p.FeH +
		teffFeHLogT*p.FeH*lt +
		teffLogg*p.Logg + teffLoggLogT*p.Logg*lt
}

// BV2Teff returns the effective temperature (K) of a star with color bv.
func BV2Teff(bv float64, p Params) float64 {
	logTeff := cubic(bvPoly, bv) +
		bvFeH[0]*p.FeH + bvFeH[1]*p.FeH*p.FeH +
		bvLogg[0]*p.Logg + bvLogg[1]*bv*p.Logg
	return math.Pow(10, logTeff)
}

// Teff2BVSlice evaluates Teff2BV for each temperature with shared Params.
func Teff2BVSlice(teff []float64, p Params) []float64 {
	return vec.Map(teff, func(t float64) float64 { return Teff2BV(t, p) })
}

// BV2TeffSlice evaluates BV2Teff for each color with shared Params.
func BV2TeffSlice(bv []float64, p Params) []float64 {
	return vec.Map(bv, func(b float64) float64 { return BV2Teff(b, p) })
}

// cubic evaluates c[0] + c[1]x + c[2]x^2 + c[3]x^3.
func cubic(c [4]float64, x float64) float64 {
	return c[0] + x*(c[1]+x*(c[2]+x*c[3]))
}
