package par

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/geosar-labs/stackrtc/internal/domain"
)

// Parameter keys of interest in an offset parameter file.
const (
	KeyRangePoly   = "range_offset_polynomial"
	KeyAzimuthPoly = "azimuth_offset_polynomial"
)

// ReadParameter returns the value of a "key: value" line from a
// line-oriented parameter file.
func ReadParameter(path, key string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("read parameter %s: %w", key, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	prefix := key + ":"
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix)), nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("read parameter %s: %w", key, err)
	}
	return "", fmt.Errorf("parameter %s not found in %s", key, path)
}

// ReadPolynomial reads one of the two offset polynomial lines.
func ReadPolynomial(path, key string) (domain.Polynomial, error) {
	v, err := ReadParameter(path, key)
	if err != nil {
		return domain.Polynomial{}, err
	}
	return domain.ParsePolynomial(v)
}

// AccumPath derives the name of the rewritten, accumulated copy of a
// pair's offset parameter file.
func AccumPath(diffPar string) string {
	return strings.TrimSuffix(diffPar, ".par") + "_accum.par"
}

// RewriteOffsets copies an offset parameter file to dst, substituting
// the two polynomial lines with the given accumulated leading
// coefficients. Every other line is copied through byte for byte. The
// source is never touched.
func RewriteOffsets(src, dst string, az, ra float64) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("rewrite offsets: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("rewrite offsets: %w", err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	r := bufio.NewReader(in)
	for {
		line, rerr := r.ReadString('\n')
		if line != "" {
			switch {
			case strings.Contains(line, KeyRangePoly):
				fmt.Fprintf(w, "%s: %s\n", KeyRangePoly, domain.Polynomial{C0: ra})
			case strings.Contains(line, KeyAzimuthPoly):
				fmt.Fprintf(w, "%s: %s\n", KeyAzimuthPoly, domain.Polynomial{C0: az})
			default:
				w.WriteString(line)
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return fmt.Errorf("rewrite offsets: %w", rerr)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("rewrite offsets: %w", err)
	}
	return out.Close()
}
