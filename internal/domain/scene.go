package domain

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// dateField is the underscore/hyphen-delimited field that carries the
// acquisition date token in Sentinel-1 names, e.g.
// S1A_IW_GRDH_1SDV_20200101T170703_... and
// s1a-iw-grd-vv-20200101t170703-....
const dateField = 4

// Separators used by the two naming families.
const (
	SceneSeparator = "_" // SAFE directories and zip archives
	GridSeparator  = "-" // measurement tiffs and derived multi-look grids
)

// Scene is a single acquisition in the stack. Name is the identifier the
// caller handed in; Dir is the resolved SAFE directory after any archive
// extraction. The derived paths are filled in as the pipeline stages run
// and are immutable afterwards.
type Scene struct {
	// Name is the original identifier (archive or directory path).
	Name string

	// Dir is the extracted SAFE directory the external tools read from.
	Dir string

	// Date is the uppercased acquisition date token, e.g. 20200101T170703.
	Date string

	// MLIPath is the multi-looked amplitude grid for the co-polarized
	// channel. Its GAMMA parameter file sits next to it at MLIPath+".par".
	MLIPath string

	// GridParPath is the snapped output grid parameter file.
	GridParPath string
}

// ParPath returns the GAMMA parameter file written alongside the
// multi-look grid by the ingestor.
func (s Scene) ParPath() string {
	if s.MLIPath == "" {
		return ""
	}
	return s.MLIPath + ".par"
}

// DateToken extracts the acquisition date token from a scene or grid
// name. The name is split on sep and the fifth field is returned
// uppercased. Returns ErrDateExtraction when the field does not exist.
func DateToken(name, sep string) (string, error) {
	base := filepath.Base(name)
	parts := strings.Split(base, sep)
	if len(parts) <= dateField {
		return "", fmt.Errorf("%w: %q", ErrDateExtraction, base)
	}
	tok := parts[dateField]
	// Derived grid names keep their extension on the last field; the
	// date field never carries one, but guard against short names like
	// a-b-c-d-e.mgrd anyway.
	if i := strings.IndexByte(tok, '.'); i >= 0 {
		tok = tok[:i]
	}
	if tok == "" {
		return "", fmt.Errorf("%w: %q", ErrDateExtraction, base)
	}
	return strings.ToUpper(tok), nil
}

// SortByDate orders scenes ascending by date token. The sort is stable:
// scenes with equal tokens keep their input order.
func SortByDate(scenes []Scene) {
	sort.SliceStable(scenes, func(i, j int) bool {
		return scenes[i].Date < scenes[j].Date
	})
}

// EarlierFirst returns the pair ordered by acquisition date, earliest
// first. Equal dates keep the given order.
func EarlierFirst(a, b Scene) (Scene, Scene) {
	if a.Date <= b.Date {
		return a, b
	}
	return b, a
}

// Pair is an ordered adjacent pair in the sorted scene sequence.
type Pair struct {
	Earlier Scene
	Later   Scene
}

// Key is the date-pair tag used to name the pair's offset parameter
// file, e.g. 20200101T170703_20200113T170702.
func (p Pair) Key() string {
	return p.Earlier.Date + "_" + p.Later.Date
}

// AdjacentPairs returns the n-1 ordered pairs over a date-sorted scene
// sequence. The caller must have sorted the scenes already.
func AdjacentPairs(scenes []Scene) []Pair {
	if len(scenes) < 2 {
		return nil
	}
	pairs := make([]Pair, 0, len(scenes)-1)
	for i := 1; i < len(scenes); i++ {
		pairs = append(pairs, Pair{Earlier: scenes[i-1], Later: scenes[i]})
	}
	return pairs
}
