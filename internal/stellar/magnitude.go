package stellar

import "math"

// LuminosityInPetawatts converts solar luminosities to petawatts.
func LuminosityInPetawatts(luminosity float64) float64 {
	return luminosity * SolarLuminosity
}

// AbsoluteMagnitude returns the absolute magnitude of a star with the given
// luminosity in solar luminosities, as -2.5 times the logarithm of its power
// in petawatts taken to base ZeroPointLuminosity. Brighter stars get lower
// values. Non-positive luminosity yields NaN or +Inf.
func AbsoluteMagnitude(luminosity float64) float64 {
	return -2.5 * logBase(LuminosityInPetawatts(luminosity), ZeroPointLuminosity)
}

// ApparentMagnitude returns the magnitude observed at distance parsecs from a
// star of the given absolute magnitude. Non-positive distance yields NaN or -Inf.
func ApparentMagnitude(absoluteMagnitude, distance float64) float64 {
	return absoluteMagnitude - 5 + 5*math.Log10(distance)
}

func logBase(x, base float64) float64 {
	return math.Log(x) / math.Log(base)
}
