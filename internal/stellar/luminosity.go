package stellar

import "math"

// LuminosityFromMass estimates luminosity in solar luminosities from the
// mass-luminosity relation. The fit is piecewise and is not continuous at the
// 0.43 and 2 solar mass breakpoints.
func LuminosityFromMass(mass float64) float64 {
	switch {
	case mass < 0.43:
		return 0.23 * math.Pow(mass, 2.3)
	case mass < 2:
		return math.Pow(mass, 4)
	default:
		return 1.4 * math.Pow(mass, 3.5)
	}
}

// LuminosityFromRadiusTemperature returns luminosity in solar luminosities
// from radius (solar radii) and effective temperature (K) via the
// Stefan-Boltzmann law scaled to the Sun.
func LuminosityFromRadiusTemperature(radius, temperature float64) float64 {
	return math.Pow(radius, 2) * math.Pow(temperature/SunTemperature, 4)
}

// MaximumAge returns the main-sequence lifetime in billions of years.
// Zero luminosity yields +Inf (or NaN for zero mass).
func MaximumAge(mass, luminosity float64) float64 {
	return 10 * (mass / luminosity)
}

// RadiusFromMass estimates radius in solar radii. Mass exactly 1 takes the
// upper branch; both branches give 1 there.
func RadiusFromMass(mass float64) float64 {
	if mass < 1 {
		return math.Pow(mass, 0.8)
	}
	return math.Pow(mass, 0.57)
}

// DensityFromMassRadius returns density in solar densities.
func DensityFromMassRadius(mass, radius float64) float64 {
	return mass / math.Pow(radius, 2)
}

// TemperatureFromLuminosityRadius returns effective temperature in Kelvin.
// Note the 5776 K scale: a star with L=1, R=1 comes out at 5776, not SunTemperature.
func TemperatureFromLuminosityRadius(luminosity, radius float64) float64 {
	return temperatureScale * math.Pow(luminosity/math.Pow(radius, 2), 0.25)
}
