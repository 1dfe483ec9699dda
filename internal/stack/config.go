package stack

import (
	"fmt"
	"path/filepath"

	"github.com/geosar-labs/stackrtc/internal/domain"
)

// productDirName is the shared collection directory created under the
// working directory when no explicit product directory is configured.
const productDirName = "RTC_PRODUCTS"

// defaultSNRThreshold matches the correlation threshold in the
// embedded estimator-option template.
const defaultSNRThreshold = 7.0

// Config holds the configuration for one stack run.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config struct {
	// Scenes are the input scene identifiers: zip archives or extracted
	// SAFE directories.
	Scenes []string

	// WorkDir is the working directory holding every intermediate
	// artifact. Re-running over the same directory resumes the run.
	WorkDir string

	// ProductDir is the shared output directory products are collected
	// into. Defaults to WorkDir/RTC_PRODUCTS.
	ProductDir string

	// Resolution is the output pixel spacing in meters.
	Resolution float64

	// SnapInterval is the post spacing grid extents are snapped to.
	// Defaults to the resolution.
	SnapInterval float64

	// SNRThreshold is the minimum correlation SNR for a multi-patch
	// match to take part in the polynomial fit.
	SNRThreshold float64

	// Workers bounds the parallel grid-parameter and ingestion stages.
	// Offset estimation and accumulation always run sequentially.
	Workers int

	// Watch enables the working-directory artifact watcher, logging
	// intermediate files as the external tools create them.
	Watch bool

	// STACSidecar writes a STAC Item next to each collected product.
	STACSidecar bool
}

// DefaultConfig returns a Config with default values. At minimum, the
// caller must set Scenes before Run.
func DefaultConfig() Config {
	return Config{
		Resolution:   30,
		SNRThreshold: defaultSNRThreshold,
		Workers:      4,
		STACSidecar:  true,
	}
}

// Validate checks the configuration for errors and sets derived
// defaults.
func (c *Config) Validate() error {
	if len(c.Scenes) == 0 {
		return fmt.Errorf("%w: at least one input scene is required", domain.ErrInvalidConfig)
	}
	if c.Resolution <= 0 {
		return fmt.Errorf("%w: resolution must be positive", domain.ErrInvalidConfig)
	}
	if c.SNRThreshold <= 0 {
		return fmt.Errorf("%w: snr threshold must be positive", domain.ErrInvalidConfig)
	}
	if c.WorkDir == "" {
		c.WorkDir = "."
	}
	if c.ProductDir == "" {
		c.ProductDir = filepath.Join(c.WorkDir, productDirName)
	}
	if c.SnapInterval <= 0 {
		c.SnapInterval = c.Resolution
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	return nil
}

// ingestLookFactor is the look factor requested from the multi-look
// ingestor for the given output pixel spacing.
func ingestLookFactor(res float64) float64 {
	return res / 10.0
}

// productLookFactor is the look factor passed to RTC product
// generation. Full resolution keeps a single look.
func productLookFactor(res float64) int {
	if res == 10.0 {
		return 1
	}
	return int(res/10.0) * 2
}
