// Package stellar computes basic physical properties of stars from mass,
// radius, temperature and distance using closed-form approximations.
//
// Units: mass in solar masses, radius in solar radii, luminosity in solar
// luminosities, temperature in Kelvin, age in billions of years, distance in
// parsecs, habitable zone bounds in AU.
//
// None of the formula functions validate their arguments. Out-of-domain input
// yields NaN or ±Inf, following Go's math package.
package stellar

// SunTemperature is the reference solar effective temperature in Kelvin used
// by LuminosityFromRadiusTemperature.
const SunTemperature = 5778

// temperatureScale is the solar reference used by
// TemperatureFromLuminosityRadius. It differs from SunTemperature and must stay
// that way; unifying them changes outputs.
const temperatureScale = 5776

const (
	// ZeroPointLuminosity is the reference luminosity for the zero of the
	// magnitude scale, truncated to an integer.
	ZeroPointLuminosity = 30128000000000

	// SolarLuminosity converts solar luminosities to petawatts, truncated to
	// an integer.
	SolarLuminosity = 382800000000
)

// SpectralClass is a stellar classification letter, O (hottest) to M (coolest).
type SpectralClass string

const (
	ClassO SpectralClass = "O"
	ClassB SpectralClass = "B"
	ClassA SpectralClass = "A"
	ClassF SpectralClass = "F"
	ClassG SpectralClass = "G"
	ClassK SpectralClass = "K"
	ClassM SpectralClass = "M"
)

// SpectralClasses lists every class from hottest to coolest.
func SpectralClasses() []SpectralClass {
	return []SpectralClass{ClassO, ClassB, ClassA, ClassF, ClassG, ClassK, ClassM}
}

// Colour returns the reference RGB colour of the class.
// Unknown classes return black.
func (c SpectralClass) Colour() Colour {
	switch c {
	case ClassO:
		return Colour{155, 176, 255}
	case ClassB:
		return Colour{170, 191, 255}
	case ClassA:
		return Colour{202, 215, 255}
	case ClassF:
		return Colour{248, 247, 255}
	case ClassG:
		return Colour{255, 244, 234}
	case ClassK:
		return Colour{255, 210, 161}
	case ClassM:
		return Colour{255, 204, 111}
	default:
		return Colour{}
	}
}
