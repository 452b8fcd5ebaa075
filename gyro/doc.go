// Package gyro implements gyrochronology relations between a star's B-V
// color, its age and its rotation period.
//
// Ages are in millions of years (Myr) and periods in days throughout.
//
// The relations are calibrated only above a minimum color (see Relation.MinBV).
// Below it the fractional powers and square roots act on negative numbers and
// the functions return NaN rather than an error, so a whole slice can be
// evaluated without bailing out on one bad element. Relation.InDomain checks
// a color before evaluation when a caller wants to flag such inputs.
//
// Every formula has a scalar form and a Slice form; the Slice forms broadcast
// their two operands with the rules of package vec.
package gyro
