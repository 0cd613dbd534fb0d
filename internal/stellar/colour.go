package stellar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Colour is an RGB triple with channels in 0-255.
type Colour struct {
	R, G, B int
}

// Hex returns the colour as "#rrggbb".
func (c Colour) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(c.R), clampChannel(c.G), clampChannel(c.B))
}

// TerminalColor returns the colour as a lipgloss true-colour value, degraded
// by the renderer on terminals with fewer colours.
func (c Colour) TerminalColor() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

func (c Colour) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// colourBand is one temperature bucket of the colour table. Temperatures in
// (previous maxTemp, maxTemp] blend from cool to hot.
type colourBand struct {
	minTemp float64
	maxTemp float64
	cool    Colour
	hot     Colour
	class   SpectralClass
}

// hottestBand is the upper edge of the table; anything above it is pure class O.
const hottestBand = 33000

// colourBands is ordered coolest first; the first band whose maxTemp is >= t wins.
// The coolest band blends from black since there is no cooler reference colour.
var colourBands = [...]colourBand{
	{0, 3700, Colour{}, ClassM.Colour(), ClassM},
	{3700, 5200, ClassM.Colour(), ClassK.Colour(), ClassK},
	{5200, 6000, ClassK.Colour(), ClassG.Colour(), ClassG},
	{6000, 7500, ClassG.Colour(), ClassF.Colour(), ClassF},
	{7500, 10000, ClassF.Colour(), ClassA.Colour(), ClassA},
	{10000, hottestBand, ClassA.Colour(), ClassO.Colour(), ClassB},
}

// ColourFromTemperature returns the approximate RGB colour of a star with the
// given effective temperature in Kelvin. Within a band each channel is
// linearly interpolated and truncated toward zero. Above 33000 K the class O
// colour is returned unchanged.
func ColourFromTemperature(temperature float64) Colour {
	band, ok := bandFor(temperature)
	if !ok {
		return ClassO.Colour()
	}
	ratio := (temperature - band.minTemp) / (band.maxTemp - band.minTemp)
	return lerpColour(band.cool, band.hot, ratio)
}

// SpectralClassForTemperature returns the spectral class whose temperature
// range contains the given temperature, using the same band edges as
// ColourFromTemperature.
func SpectralClassForTemperature(temperature float64) SpectralClass {
	band, ok := bandFor(temperature)
	if !ok {
		return ClassO
	}
	return band.class
}

func bandFor(temperature float64) (colourBand, bool) {
	for _, b := range colourBands {
		if temperature <= b.maxTemp {
			return b, true
		}
	}
	return colourBand{}, false
}

// lerpColour blends from a to b by ratio, truncating each channel.
func lerpColour(a, b Colour, ratio float64) Colour {
	return Colour{
		R: a.R + int(float64(b.R-a.R)*ratio),
		G: a.G + int(float64(b.G-a.G)*ratio),
		B: a.B + int(float64(b.B-a.B)*ratio),
	}
}
