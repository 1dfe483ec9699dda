package par

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/geosar-labs/stackrtc/internal/domain"
)

func TestWriteGridPar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene_dem.par")
	gp := domain.GridParameters{
		Title:         "S1A_IW_GRDH_1SDV_20200101T170703_20200101T170730_033264_03DA9B_CAB2",
		Zone:          6,
		FalseNorthing: 0,
		DataType:      domain.DataTypeFloat,
		PixelSpacing:  30,
		Width:         403,
		Height:        412,
		XMin:          333540,
		XMax:          345630,
		YMin:          6999990,
		YMax:          7012350,
	}
	if err := WriteGridPar(path, gp); err != nil {
		t.Fatalf("WriteGridPar returned error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "UTM\n" +
		"WGS84\n" +
		"1\n" +
		"6\n" +
		"0.0\n" +
		"S1A_IW_GRDH_1SDV_20200101T170703_20200101T170730_033264_03DA9B_CAB2\n" +
		"REAL*4\n" +
		"0.0\n" +
		"1.0\n" +
		"403\n" +
		"412\n" +
		"-30.0 30.0\n" +
		"7012350.0 333540.0\n"
	if string(got) != want {
		t.Fatalf("grid par mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestWriteGridParSouth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dem.par")
	gp := domain.GridParameters{
		Title:         "scene",
		Zone:          36,
		FalseNorthing: 10000000,
		DataType:      domain.DataTypeInt16,
		PixelSpacing:  10,
		Width:         1,
		Height:        1,
		YMax:          9890000,
		XMin:          400000,
	}
	if err := WriteGridPar(path, gp); err != nil {
		t.Fatalf("WriteGridPar returned error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "UTM\nWGS84\n1\n36\n10000000.0\nscene\nINTEGER*2\n0.0\n1.0\n1\n1\n-10.0 10.0\n9890000.0 400000.0\n"
	if string(got) != want {
		t.Fatalf("grid par mismatch:\n got: %q\nwant: %q", got, want)
	}
}
