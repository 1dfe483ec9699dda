package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// polyTerms is the number of coefficients in a GAMMA offset polynomial.
const polyTerms = 6

// Polynomial is a range or azimuth offset polynomial. Only the constant
// term is ever fitted here; the five higher-order terms are fixed at
// zero, describing a uniform shift between two grids.
type Polynomial struct {
	C0 float64
}

// Terms returns all six coefficients in parameter-file order.
func (p Polynomial) Terms() [polyTerms]float64 {
	return [polyTerms]float64{p.C0}
}

// String renders the polynomial as it appears on a parameter-file line:
// the constant term followed by five zero terms.
func (p Polynomial) String() string {
	return strconv.FormatFloat(p.C0, 'g', -1, 64) + " 0.0 0.0 0.0 0.0 0.0"
}

// ParsePolynomial reads the leading coefficient from a space-separated
// coefficient list as found in an offset parameter file.
func ParsePolynomial(s string) (Polynomial, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Polynomial{}, fmt.Errorf("empty polynomial value")
	}
	c0, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Polynomial{}, fmt.Errorf("parse polynomial %q: %w", s, err)
	}
	return Polynomial{C0: c0}, nil
}

// OffsetEstimate is the fitted geometric offset between an adjacent
// scene pair, read back from the pair's offset parameter file. Exactly
// one exists per adjacent pair in the sorted chain.
type OffsetEstimate struct {
	Pair    Pair
	Range   Polynomial
	Azimuth Polynomial
}

// AccumulatedOffset is the running sum of leading coefficients from the
// reference scene up to a given scene. The reference scene itself
// carries the zero value and is never persisted.
type AccumulatedOffset struct {
	Azimuth float64
	Range   float64
}

// Add folds one pairwise estimate into the accumulation, returning a
// new value rather than mutating in place.
func (a AccumulatedOffset) Add(d OffsetEstimate) AccumulatedOffset {
	return AccumulatedOffset{
		Azimuth: a.Azimuth + d.Azimuth.C0,
		Range:   a.Range + d.Range.C0,
	}
}
