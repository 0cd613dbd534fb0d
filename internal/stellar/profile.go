package stellar

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrInvalidInput is returned by Derive when an input lies outside the
// physically meaningful domain of the formulas.
var ErrInvalidInput = errors.New("invalid stellar input")

// Inputs describes a star for Derive. Zero optional fields mean "not
// supplied" and are derived from the other inputs.
type Inputs struct {
	Mass        float64 // Solar masses, required
	Radius      float64 // Solar radii, derived from mass when zero
	Temperature float64 // Kelvin, derived from luminosity and radius when zero
	Distance    float64 // Parsecs, apparent magnitude is only computed when set
	Age         float64 // Current age in billions of years
}

// Profile holds every property derived for one star.
type Profile struct {
	Inputs Inputs

	Luminosity        float64 // Solar luminosities
	Radius            float64 // Solar radii
	Temperature       float64 // Kelvin
	Density           float64 // Solar densities
	Colour            Colour
	Class             SpectralClass
	HabitableZone     Zone
	MaximumAge        float64 // Billions of years
	Life              LifeVerdict
	PowerPetawatts    float64
	AbsoluteMagnitude float64

	// ApparentMagnitude is only meaningful when HasDistance is true.
	ApparentMagnitude float64
	HasDistance       bool
}

// Validate checks the inputs against the domains the formulas accept.
func (in Inputs) Validate() error {
	if !isPositive(in.Mass) {
		return fmt.Errorf("mass %v: must be a positive finite number: %w", in.Mass, ErrInvalidInput)
	}
	optional := []struct {
		name  string
		value float64
	}{
		{"radius", in.Radius},
		{"temperature", in.Temperature},
		{"distance", in.Distance},
		{"age", in.Age},
	}
	for _, o := range optional {
		if o.value != 0 && !isPositive(o.value) {
			return fmt.Errorf("%s %v: must be a positive finite number or zero: %w", o.name, o.value, ErrInvalidInput)
		}
	}
	return nil
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Derive computes a full Profile from the inputs.
//
// Radius falls back to RadiusFromMass. When a temperature is supplied the
// luminosity comes from radius and temperature; otherwise it comes from the
// mass-luminosity relation and the temperature is derived from it.
func Derive(in Inputs) (*Profile, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	p := &Profile{Inputs: in}

	p.Radius = in.Radius
	if p.Radius == 0 {
		p.Radius = RadiusFromMass(in.Mass)
	}

	if in.Temperature > 0 {
		p.Temperature = in.Temperature
		p.Luminosity = LuminosityFromRadiusTemperature(p.Radius, in.Temperature)
	} else {
		p.Luminosity = LuminosityFromMass(in.Mass)
		p.Temperature = TemperatureFromLuminosityRadius(p.Luminosity, p.Radius)
	}

	p.Density = DensityFromMassRadius(in.Mass, p.Radius)
	p.Colour = ColourFromTemperature(p.Temperature)
	p.Class = SpectralClassForTemperature(p.Temperature)
	p.HabitableZone = HabitableZoneOf(p.Luminosity)
	p.MaximumAge = MaximumAge(in.Mass, p.Luminosity)
	p.Life = LifePossibility(in.Mass, in.Age)
	p.PowerPetawatts = LuminosityInPetawatts(p.Luminosity)
	p.AbsoluteMagnitude = AbsoluteMagnitude(p.Luminosity)

	if in.Distance > 0 {
		p.ApparentMagnitude = ApparentMagnitude(p.AbsoluteMagnitude, in.Distance)
		p.HasDistance = true
	}

	return p, nil
}

// WriteSummary writes a plain-text property table. The colour swatch is
// styled for w's terminal capabilities and is plain text for non-terminals.
func (p *Profile) WriteSummary(w io.Writer) {
	swatch := lipgloss.NewRenderer(w).NewStyle().
		Foreground(p.Colour.TerminalColor()).
		Render("●")

	fmt.Fprintf(w, "Star: %.3g M☉, class %s\n", p.Inputs.Mass, p.Class)
	fmt.Fprintln(w, strings.Repeat("─", 48))

	rows := []summaryRow{
		{"Luminosity", fmt.Sprintf("%.4g L☉", p.Luminosity)},
		{"Power", fmt.Sprintf("%.4g PW", p.PowerPetawatts)},
		{"Radius", fmt.Sprintf("%.4g R☉", p.Radius)},
		{"Density", fmt.Sprintf("%.4g ρ☉", p.Density)},
		{"Temperature", fmt.Sprintf("%.0f K", p.Temperature)},
		{"Colour", fmt.Sprintf("%s %s %s", swatch, p.Colour.Hex(), p.Colour)},
		{"Habitable zone", fmt.Sprintf("%.3f - %.3f AU", p.HabitableZone.Inner, p.HabitableZone.Outer)},
		{"Maximum age", fmt.Sprintf("%.3g Gyr", p.MaximumAge)},
		{"Life", string(p.Life)},
		{"Abs. magnitude", fmt.Sprintf("%.2f", p.AbsoluteMagnitude)},
	}
	if p.HasDistance {
		rows = append(rows, summaryRow{"App. magnitude", fmt.Sprintf("%.2f at %.4g pc", p.ApparentMagnitude, p.Inputs.Distance)})
	}

	for _, r := range rows {
		fmt.Fprintf(w, "%-16s %s\n", r.label, r.value)
	}
}

type summaryRow struct {
	label string
	value string
}
