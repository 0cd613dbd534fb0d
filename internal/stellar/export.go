package stellar

import (
	"encoding/json"
	"io"

	"github.com/litescript/ls-stellar/internal/version"
)

// ProfileExport is the JSON-serializable representation of a Profile.
type ProfileExport struct {
	Version           string       `json:"version"`
	Inputs            InputsExport `json:"inputs"`
	Luminosity        float64      `json:"luminosity_solar"`
	PowerPetawatts    float64      `json:"power_petawatts"`
	Radius            float64      `json:"radius_solar"`
	Density           float64      `json:"density_solar"`
	Temperature       float64      `json:"temperature_k"`
	Colour            ColourExport `json:"colour"`
	SpectralClass     string       `json:"spectral_class"`
	HabitableZone     ZoneExport   `json:"habitable_zone"`
	MaximumAge        float64      `json:"maximum_age_gyr"`
	Life              string       `json:"life"`
	AbsoluteMagnitude float64      `json:"absolute_magnitude"`
	ApparentMagnitude *float64     `json:"apparent_magnitude,omitempty"`
}

// InputsExport records what the profile was derived from.
type InputsExport struct {
	Mass        float64 `json:"mass_solar"`
	Radius      float64 `json:"radius_solar,omitempty"`
	Temperature float64 `json:"temperature_k,omitempty"`
	Distance    float64 `json:"distance_pc,omitempty"`
	Age         float64 `json:"age_gyr,omitempty"`
}

// ColourExport carries a colour both as hex and as channels.
type ColourExport struct {
	Hex string `json:"hex"`
	RGB [3]int `json:"rgb"`
}

// ZoneExport is a habitable zone in AU.
type ZoneExport struct {
	InnerAU float64 `json:"inner_au"`
	OuterAU float64 `json:"outer_au"`
}

// ExportProfile converts a Profile to an exportable format.
func ExportProfile(p *Profile) *ProfileExport {
	if p == nil {
		return &ProfileExport{Version: version.Version}
	}

	export := &ProfileExport{
		Version: version.Version,
		Inputs: InputsExport{
			Mass:        p.Inputs.Mass,
			Radius:      p.Inputs.Radius,
			Temperature: p.Inputs.Temperature,
			Distance:    p.Inputs.Distance,
			Age:         p.Inputs.Age,
		},
		Luminosity:     p.Luminosity,
		PowerPetawatts: p.PowerPetawatts,
		Radius:         p.Radius,
		Density:        p.Density,
		Temperature:    p.Temperature,
		Colour: ColourExport{
			Hex: p.Colour.Hex(),
			RGB: [3]int{p.Colour.R, p.Colour.G, p.Colour.B},
		},
		SpectralClass: string(p.Class),
		HabitableZone: ZoneExport{
			InnerAU: p.HabitableZone.Inner,
			OuterAU: p.HabitableZone.Outer,
		},
		MaximumAge:        p.MaximumAge,
		Life:              string(p.Life),
		AbsoluteMagnitude: p.AbsoluteMagnitude,
	}

	if p.HasDistance {
		m := p.ApparentMagnitude
		export.ApparentMagnitude = &m
	}

	return export
}

// WriteJSON writes the profile as indented JSON to the given writer.
func (e *ProfileExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}
