package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ProductName holds the parsed fields of an ASF RTC product file name,
// e.g. S1A_IW_RT30_20180727T161143_G_gpn_VV.
type ProductName struct {
	Platform     string
	BeamMode     string
	PixelSpacing string
	StartTime    string
	Package      string // Gamma or S1TBX
	Radiometry   string // gamma0, sigma0 or beta0
	Scale        string // power or amplitude
	Filtered     bool
	Polarization string
}

// ParseProductName parses an RTC product file name. The extension, if
// any, is ignored.
func ParseProductName(name string) (ProductName, error) {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	data := strings.Split(base, "_")
	if len(data) < 7 {
		return ProductName{}, fmt.Errorf("unable to parse product name %q", base)
	}

	p := ProductName{
		Platform:  data[0],
		BeamMode:  data[1],
		StartTime: data[3],
	}
	if len(data[2]) >= 4 {
		p.PixelSpacing = data[2][2:4]
	}

	switch {
	case strings.Contains(data[4], "G"):
		p.Package = "Gamma"
	case strings.Contains(data[4], "S"):
		p.Package = "S1TBX"
	default:
		return ProductName{}, fmt.Errorf("unknown science code %q in %q", data[4], base)
	}

	flags := data[5]
	if len(flags) < 3 {
		return ProductName{}, fmt.Errorf("short product flags %q in %q", flags, base)
	}
	switch flags[0] {
	case 'g':
		p.Radiometry = "gamma0"
	case 's':
		p.Radiometry = "sigma0"
	case 'b':
		p.Radiometry = "beta0"
	default:
		return ProductName{}, fmt.Errorf("unknown radiometry %q in %q", flags[0:1], base)
	}
	switch flags[1] {
	case 'p':
		p.Scale = "power"
	case 'a':
		p.Scale = "amplitude"
	default:
		return ProductName{}, fmt.Errorf("unknown scale %q in %q", flags[1:2], base)
	}
	switch flags[2] {
	case 'n':
		p.Filtered = false
	case 'f':
		p.Filtered = true
	default:
		return ProductName{}, fmt.Errorf("unknown filter flag %q in %q", flags[2:3], base)
	}

	if len(data[6]) < 2 {
		return ProductName{}, fmt.Errorf("missing polarization in %q", base)
	}
	p.Polarization = data[6][0:2]

	return p, nil
}
