// Package fit holds small model shapes used when fitting or overplotting
// distributions of derived stellar quantities.
package fit

import (
	"math"

	"github.com/alexiusacademia/gogyro/vec"
)

// Gaussian returns amplitude*exp(-(x-center)^2 / (2 sigma^2)) + offset.
// At x == center it is exactly amplitude + offset.
func Gaussian(x, amplitude, offset, center, sigma float64) float64 {
	d := x - center
	return amplitude*math.Exp(-d*d/(2*sigma*sigma)) + offset
}

// GaussianSlice evaluates Gaussian at every x with shared shape parameters.
func GaussianSlice(x []float64, amplitude, offset, center, sigma float64) []float64 {
	return vec.Map(x, func(xi float64) float64 {
		return Gaussian(xi, amplitude, offset, center, sigma)
	})
}
