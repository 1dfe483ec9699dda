package domain

import "testing"

func TestParseProductName(t *testing.T) {
	p, err := ParseProductName("S1A_IW_RT30_20180727T161143_G_gpn_VV.tif")
	if err != nil {
		t.Fatalf("ParseProductName returned error: %v", err)
	}
	want := ProductName{
		Platform:     "S1A",
		BeamMode:     "IW",
		PixelSpacing: "30",
		StartTime:    "20180727T161143",
		Package:      "Gamma",
		Radiometry:   "gamma0",
		Scale:        "power",
		Filtered:     false,
		Polarization: "VV",
	}
	if p != want {
		t.Fatalf("expected %+v, got %+v", want, p)
	}
}

func TestParseProductNameVariants(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		pkg        string
		radiometry string
		scale      string
		filtered   bool
		pol        string
	}{
		{"s1tbx sigma amplitude filtered", "S1B_EW_RT30_20190101T000000_S_saf_HH", "S1TBX", "sigma0", "amplitude", true, "HH"},
		{"beta power unfiltered", "S1A_IW_RT10_20190101T000000_G_bpn_VH", "Gamma", "beta0", "power", false, "VH"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseProductName(tt.in)
			if err != nil {
				t.Fatalf("ParseProductName returned error: %v", err)
			}
			if p.Package != tt.pkg || p.Radiometry != tt.radiometry || p.Scale != tt.scale ||
				p.Filtered != tt.filtered || p.Polarization != tt.pol {
				t.Fatalf("unexpected parse %+v", p)
			}
		})
	}
}

func TestParseProductNameRejects(t *testing.T) {
	bad := []string{
		"S1A_IW_RT30",
		"S1A_IW_RT30_20180727T161143_X_gpn_VV",
		"S1A_IW_RT30_20180727T161143_G_xpn_VV",
		"S1A_IW_RT30_20180727T161143_G_gxn_VV",
		"S1A_IW_RT30_20180727T161143_G_gpx_VV",
		"S1A_IW_RT30_20180727T161143_G_gpn_V",
	}
	for _, in := range bad {
		if _, err := ParseProductName(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}
