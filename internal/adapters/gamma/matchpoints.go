package gamma

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// matchPoint is one multi-patch correlation candidate: the measured
// range/azimuth offset of a patch and the SNR of its correlation peak.
type matchPoint struct {
	RangeOffset   float64
	AzimuthOffset float64
	SNR           float64
}

// readMatchPoints pairs the candidate offsets file (one "range azimuth"
// pair per line) with the SNR file (one value per line) by index. A
// length mismatch between the two files means the correlation step was
// interrupted and is treated as an error.
func readMatchPoints(offsPath, snrPath string) ([]matchPoint, error) {
	offsets, err := readFloatRows(offsPath, 2)
	if err != nil {
		return nil, fmt.Errorf("read offsets: %w", err)
	}
	snrs, err := readFloatRows(snrPath, 1)
	if err != nil {
		return nil, fmt.Errorf("read snr: %w", err)
	}
	if len(offsets) != len(snrs) {
		return nil, fmt.Errorf("offset/snr length mismatch: %d vs %d", len(offsets), len(snrs))
	}

	points := make([]matchPoint, len(offsets))
	for i := range offsets {
		points[i] = matchPoint{
			RangeOffset:   offsets[i][0],
			AzimuthOffset: offsets[i][1],
			SNR:           snrs[i][0],
		}
	}
	return points, nil
}

func readFloatRows(path string, cols int) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows [][]float64
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < cols {
			return nil, fmt.Errorf("%s: short row %q", path, sc.Text())
		}
		row := make([]float64, cols)
		for i := 0; i < cols; i++ {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	return rows, sc.Err()
}

// snrSummary describes the candidate population for logging and the
// viability decision.
type snrSummary struct {
	Viable int
	Mean   float64
	StdDev float64
}

// summarize counts candidates at or above the threshold and computes
// SNR statistics over the whole population.
func summarize(points []matchPoint, threshold float64) snrSummary {
	var s snrSummary
	if len(points) == 0 {
		return s
	}
	snrs := make([]float64, len(points))
	for i, p := range points {
		snrs[i] = p.SNR
		if p.SNR >= threshold {
			s.Viable++
		}
	}
	s.Mean = stat.Mean(snrs, nil)
	if len(snrs) > 1 {
		s.StdDev = stat.StdDev(snrs, nil)
	}
	return s
}
