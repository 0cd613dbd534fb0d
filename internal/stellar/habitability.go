package stellar

import "math"

// Habitable zone flux limits in solar luminosities per AU squared.
const (
	innerFlux = 1.1
	outerFlux = 0.53
)

// HabitableZone returns the inner and outer edges of the habitable zone in AU
// for a star of the given luminosity.
func HabitableZone(luminosity float64) (inner, outer float64) {
	return math.Sqrt(luminosity / innerFlux), math.Sqrt(luminosity / outerFlux)
}

// Zone is a habitable zone in AU.
type Zone struct {
	Inner float64
	Outer float64
}

// HabitableZoneOf is HabitableZone returning a Zone.
func HabitableZoneOf(luminosity float64) Zone {
	inner, outer := HabitableZone(luminosity)
	return Zone{Inner: inner, Outer: outer}
}

// Contains reports whether an orbit at au lies inside the zone, edges included.
func (z Zone) Contains(au float64) bool {
	return au >= z.Inner && au <= z.Outer
}

// Width returns the zone width in AU.
func (z Zone) Width() float64 {
	return z.Outer - z.Inner
}

// LifeVerdict categorises whether a star's system could host life.
type LifeVerdict string

const (
	LifeNotPossible LifeVerdict = "Life Not Possible"
	StarTooYoung    LifeVerdict = "Star Too Young"
	LifePossible    LifeVerdict = "Life Possible"
)

// Bounds for LifePossibility, all inclusive.
const (
	minLifeMass = 0.5
	maxLifeMass = 1.4
	minLifeAge  = 3.5 // billions of years
)

// LifePossibility judges a star by mass (solar masses) and current age
// (billions of years). Mass must lie in [0.5, 1.4] and age be at least 3.5.
func LifePossibility(mass, age float64) LifeVerdict {
	// Written as positive range checks so NaN falls through to the negative verdicts.
	if !(mass >= minLifeMass && mass <= maxLifeMass) {
		return LifeNotPossible
	}
	if !(age >= minLifeAge) {
		return StarTooYoung
	}
	return LifePossible
}
