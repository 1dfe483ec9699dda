// Package stack implements the SAR stack co-registration pipeline:
// scene cataloging, grid parameter generation, multi-look ingestion,
// tiered pairwise offset estimation, offset accumulation and stack
// product generation.
package stack

import (
	"context"
	"fmt"
	"os"

	"github.com/geosar-labs/stackrtc/internal/adapters/gamma"
	"github.com/geosar-labs/stackrtc/internal/ports"
	"github.com/geosar-labs/stackrtc/internal/watch"
)

// deps are the external collaborators one run needs. Run wires the
// GAMMA adapter; tests substitute fakes.
type deps struct {
	ingest ports.Ingestor
	offset ports.OffsetTool
	rtc    ports.ProductGenerator
}

// Run executes a full stack run with the GAMMA toolchain. It blocks
// until the run completes, the context is cancelled, or a fatal
// condition surfaces.
func Run(ctx context.Context, cfg Config) error {
	tool := gamma.New(logger)
	if cfg.SNRThreshold > 0 {
		tool.SNRThreshold = cfg.SNRThreshold
	}
	return run(ctx, cfg, deps{ingest: tool, offset: tool, rtc: tool})
}

func run(ctx context.Context, cfg Config, d deps) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.WorkDir, 0o755); err != nil {
		return fmt.Errorf("work dir: %w", err)
	}

	if cfg.Watch {
		w, err := watch.New(cfg.WorkDir, func(path string) {
			logger.Debug().Str("artifact", path).Msg("artifact created")
		})
		if err != nil {
			logger.Warn().Err(err).Msg("artifact watcher unavailable")
		} else {
			w.Start(ctx)
			defer w.Close()
		}
	}

	scenes, err := buildCatalog(cfg)
	if err != nil {
		return err
	}
	logger.Info().Int("scenes", len(scenes)).Float64("res", cfg.Resolution).Msg("starting stack run")

	boxes, err := generateGridParams(ctx, cfg, scenes)
	if err != nil {
		return err
	}
	if err := ingestScenes(ctx, cfg, scenes, d.ingest); err != nil {
		return err
	}
	if err := verifyDates(scenes); err != nil {
		return err
	}

	estimates, err := estimatePairOffsets(ctx, cfg, scenes, d.offset)
	if err != nil {
		return err
	}
	accum := accumulateOffsets(estimates)

	if err := generateProducts(ctx, cfg, scenes, accum, boxes, d.rtc); err != nil {
		return err
	}
	logger.Info().Str("products", cfg.ProductDir).Msg("stack run complete")
	return nil
}
