// Package par reads and writes the GAMMA-style parameter files the
// pipeline exchanges with its external tools.
package par

import (
	"fmt"
	"os"
	"strings"

	"github.com/geosar-labs/stackrtc/internal/domain"
)

// WriteGridPar writes the fixed-format output grid parameter file for
// one scene. Line order and formatting are part of the contract with
// the downstream geocoding step and must not change:
//
//	projection, datum, projection flag, zone, false northing, title,
//	data type, offset, scale, width, height, pixel spacing pair,
//	upper-left corner (northing, easting).
func WriteGridPar(path string, gp domain.GridParameters) error {
	var b strings.Builder
	b.WriteString("UTM\n")
	b.WriteString("WGS84\n")
	b.WriteString("1\n")
	fmt.Fprintf(&b, "%d\n", gp.Zone)
	fmt.Fprintf(&b, "%.1f\n", gp.FalseNorthing)
	fmt.Fprintf(&b, "%s\n", gp.Title)
	fmt.Fprintf(&b, "%s\n", gp.DataType)
	b.WriteString("0.0\n")
	b.WriteString("1.0\n")
	fmt.Fprintf(&b, "%d\n", gp.Width)
	fmt.Fprintf(&b, "%d\n", gp.Height)
	fmt.Fprintf(&b, "%.1f %.1f\n", -gp.PixelSpacing, gp.PixelSpacing)
	fmt.Fprintf(&b, "%.1f %.1f\n", gp.YMax, gp.XMin)

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write grid par: %w", err)
	}
	return nil
}
