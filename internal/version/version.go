// Package version provides build and version information.
package version

// Version is the current library version.
const Version = "0.2.0"

// Milestones:
// 0.2.0 - Profile assembler, JSON export, spectral class lookup
// 0.1.0 - Initial release: luminosity, radius, temperature, colour, habitable zone, magnitudes
