package stellar

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/litescript/ls-stellar/internal/version"
)

func TestExportProfile(t *testing.T) {
	p, err := Derive(Inputs{Mass: 1.0, Age: 4.6, Distance: 10})
	if err != nil {
		t.Fatalf("Derive() error = %v", err)
	}

	export := ExportProfile(p)

	if export.Version != version.Version {
		t.Errorf("Version = %q, want %q", export.Version, version.Version)
	}
	if export.Inputs.Mass != 1.0 {
		t.Errorf("Inputs.Mass = %v, want 1", export.Inputs.Mass)
	}
	if export.Colour.Hex != "#ffead5" {
		t.Errorf("Colour.Hex = %q, want #ffead5", export.Colour.Hex)
	}
	if export.Colour.RGB != [3]int{255, 234, 213} {
		t.Errorf("Colour.RGB = %v", export.Colour.RGB)
	}
	if export.SpectralClass != "G" {
		t.Errorf("SpectralClass = %q, want G", export.SpectralClass)
	}
	if export.Life != "Life Possible" {
		t.Errorf("Life = %q", export.Life)
	}
	if export.ApparentMagnitude == nil {
		t.Fatal("ApparentMagnitude should be set when a distance is given")
	}
	if *export.ApparentMagnitude != p.ApparentMagnitude {
		t.Errorf("ApparentMagnitude = %v, want %v", *export.ApparentMagnitude, p.ApparentMagnitude)
	}
}

func TestExportProfile_NoDistance(t *testing.T) {
	p, err := Derive(Inputs{Mass: 2.0})
	if err != nil {
		t.Fatalf("Derive() error = %v", err)
	}

	if ExportProfile(p).ApparentMagnitude != nil {
		t.Error("ApparentMagnitude should be nil without a distance")
	}
}

func TestExportProfile_Nil(t *testing.T) {
	export := ExportProfile(nil)
	if export.Version != version.Version {
		t.Errorf("Version = %q, want %q", export.Version, version.Version)
	}
	if export.SpectralClass != "" {
		t.Errorf("SpectralClass = %q, want empty", export.SpectralClass)
	}
}

func TestProfileExport_WriteJSON(t *testing.T) {
	p, err := Derive(Inputs{Mass: 1.0, Distance: 10})
	if err != nil {
		t.Fatalf("Derive() error = %v", err)
	}

	var buf bytes.Buffer
	if err := ExportProfile(p).WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	// Should be valid, indented JSON
	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("WriteJSON() produced invalid JSON: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"") {
		t.Error("JSON should be indented")
	}

	for _, key := range []string{"version", "inputs", "luminosity_solar", "temperature_k", "colour", "habitable_zone", "life", "absolute_magnitude", "apparent_magnitude"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("JSON missing key %q", key)
		}
	}

	zone, ok := decoded["habitable_zone"].(map[string]interface{})
	if !ok {
		t.Fatalf("habitable_zone = %T, want object", decoded["habitable_zone"])
	}
	if zone["inner_au"].(float64) >= zone["outer_au"].(float64) {
		t.Errorf("inner_au %v should be below outer_au %v", zone["inner_au"], zone["outer_au"])
	}
}
