// Package stackrtc chains a time-ordered stack of SAR scenes,
// co-registers each scene against its chronological predecessor, and
// accumulates the pairwise offsets into a single correction per scene
// before RTC product generation.
//
// Example usage:
//
//	cfg := stackrtc.DefaultConfig()
//	cfg.Scenes = []string{"a.zip", "b.zip", "c.zip"}
//	cfg.WorkDir = "/data/stack"
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	if err := stackrtc.Run(context.Background(), cfg); err != nil {
//	    log.Fatal(err)
//	}
package stackrtc

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/geosar-labs/stackrtc/internal/stack"
)

// Config holds the configuration for one stack run.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = stack.Config

// Run executes a full stack run: catalog, grid generation, multi-look
// ingestion, pairwise offset estimation, offset accumulation and
// product generation. It blocks until the run completes or fails.
func Run(ctx context.Context, cfg Config) error {
	return stack.Run(ctx, cfg)
}

// DefaultConfig returns a Config with sensible default values.
// At minimum, you must set Scenes before calling Run.
func DefaultConfig() Config {
	return stack.DefaultConfig()
}

// Logger returns the package-level zerolog logger used by the
// pipeline.
func Logger() zerolog.Logger {
	return stack.Logger()
}
