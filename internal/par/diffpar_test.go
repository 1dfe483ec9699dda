package par

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleDiffPar = `Gamma DIFF&GEO Processing Parameters
title: 20200101T170703_20200113T170702
initial_range_offset:                   12
initial_azimuth_offset:                 -3
range_offset_polynomial:    0.5 0.0 0.0 0.0 0.0 0.0
azimuth_offset_polynomial:  -0.2 0.0 0.0 0.0 0.0 0.0
offset_estimation_window_width:         256
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "20200101T170703_20200113T170702.par")
	if err := os.WriteFile(path, []byte(sampleDiffPar), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadParameter(t *testing.T) {
	path := writeSample(t)

	got, err := ReadParameter(path, "title")
	if err != nil {
		t.Fatalf("ReadParameter returned error: %v", err)
	}
	if got != "20200101T170703_20200113T170702" {
		t.Fatalf("unexpected value %q", got)
	}

	if _, err := ReadParameter(path, "no_such_key"); err == nil {
		t.Fatal("expected error for missing key")
	}
}

func TestReadPolynomial(t *testing.T) {
	path := writeSample(t)

	ra, err := ReadPolynomial(path, KeyRangePoly)
	if err != nil {
		t.Fatalf("ReadPolynomial returned error: %v", err)
	}
	if ra.C0 != 0.5 {
		t.Fatalf("range c0 = %v, want 0.5", ra.C0)
	}

	az, err := ReadPolynomial(path, KeyAzimuthPoly)
	if err != nil {
		t.Fatalf("ReadPolynomial returned error: %v", err)
	}
	if az.C0 != -0.2 {
		t.Fatalf("azimuth c0 = %v, want -0.2", az.C0)
	}
}

func TestAccumPath(t *testing.T) {
	got := AccumPath("/work/20200101T170703_20200113T170702.par")
	want := "/work/20200101T170703_20200113T170702_accum.par"
	if got != want {
		t.Fatalf("AccumPath = %q, want %q", got, want)
	}
}

func TestRewriteOffsets(t *testing.T) {
	src := writeSample(t)
	dst := AccumPath(src)

	if err := RewriteOffsets(src, dst, 0.8, -0.1); err != nil {
		t.Fatalf("RewriteOffsets returned error: %v", err)
	}

	// Substituted lines carry the accumulated coefficients.
	ra, err := ReadPolynomial(dst, KeyRangePoly)
	if err != nil {
		t.Fatal(err)
	}
	az, err := ReadPolynomial(dst, KeyAzimuthPoly)
	if err != nil {
		t.Fatal(err)
	}
	if ra.C0 != -0.1 || az.C0 != 0.8 {
		t.Fatalf("rewritten coefficients = (az %v, ra %v), want (0.8, -0.1)", az.C0, ra.C0)
	}

	// Every other line is untouched and the source is preserved.
	out, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range []string{
		"Gamma DIFF&GEO Processing Parameters\n",
		"initial_range_offset:                   12\n",
		"offset_estimation_window_width:         256\n",
	} {
		if !strings.Contains(string(out), line) {
			t.Fatalf("line %q missing from rewritten file", line)
		}
	}
	orig, err := os.ReadFile(src)
	if err != nil {
		t.Fatal(err)
	}
	if string(orig) != sampleDiffPar {
		t.Fatal("source file was modified")
	}
}

func TestRewriteOffsetsNoTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "pair.par")
	content := "title: x\nrange_offset_polynomial: 0.0 0.0 0.0 0.0 0.0 0.0\nazimuth_offset_polynomial: 0.0 0.0 0.0 0.0 0.0 0.0\nlast: y"
	if err := os.WriteFile(src, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(dir, "pair_accum.par")
	if err := RewriteOffsets(src, dst, 1.25, 2.5); err != nil {
		t.Fatalf("RewriteOffsets returned error: %v", err)
	}
	out, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(out), "last: y") {
		t.Fatalf("final unterminated line lost: %q", out)
	}
	if !strings.Contains(string(out), "range_offset_polynomial: 2.5 0.0 0.0 0.0 0.0 0.0\n") {
		t.Fatalf("range polynomial not rewritten: %q", out)
	}
}
