package stack

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/geosar-labs/stackrtc/internal/adapters/stacmeta"
	"github.com/geosar-labs/stackrtc/internal/domain"
	"github.com/geosar-labs/stackrtc/internal/fsutil"
	"github.com/geosar-labs/stackrtc/internal/geo"
	"github.com/geosar-labs/stackrtc/internal/par"
	"github.com/geosar-labs/stackrtc/internal/ports"
)

// Per-polarization naming patterns the generated rasters are collected
// by.
var productPatterns = []string{"*_V*.tif", "*_H*.tif"}

// generateProducts runs RTC product generation for every scene. The
// reference scene gets no correction; every later scene gets a copy of
// its pair's offset parameter file rewritten with the accumulated
// polynomial. Any single failure aborts the run.
func generateProducts(ctx context.Context, cfg Config, scenes []domain.Scene, accum []domain.AccumulatedOffset, boxes []geo.BoundingBox, gen ports.ProductGenerator) error {
	if err := os.MkdirAll(cfg.ProductDir, 0o755); err != nil {
		return fmt.Errorf("product dir: %w", err)
	}
	look := productLookFactor(cfg.Resolution)

	for i, s := range scenes {
		stackPar := ""
		if i > 0 {
			p := domain.Pair{Earlier: scenes[i-1], Later: s}
			diffPar, err := filepath.Abs(filepath.Join(cfg.WorkDir, p.Key()+".par"))
			if err != nil {
				return err
			}
			stackPar = par.AccumPath(diffPar)
			a := accum[i-1]
			logger.Info().
				Str("scene", s.Date).
				Float64("azimuth", a.Azimuth).
				Float64("range", a.Range).
				Msg("applying accumulated offset")
			if err := par.RewriteOffsets(diffPar, stackPar, a.Azimuth, a.Range); err != nil {
				return err
			}
		}

		copied, err := generateScene(ctx, cfg, s, look, stackPar, gen)
		if err != nil {
			return err
		}
		if cfg.STACSidecar {
			if err := stacmeta.WriteItem(cfg.ProductDir, s, boxes[i], copied); err != nil {
				logger.Warn().Err(err).Str("scene", s.Date).Msg("stac sidecar not written")
			}
		}
	}
	return nil
}

// generateScene runs product generation in the scene's own working
// subdirectory and copies the per-polarization rasters into the shared
// product directory. Returns the copied paths.
func generateScene(ctx context.Context, cfg Config, s domain.Scene, look int, stackPar string, gen ports.ProductGenerator) ([]string, error) {
	sceneWork := filepath.Join(cfg.WorkDir, s.Date)
	if fsutil.Exists(sceneWork) {
		logger.Info().Str("dir", sceneWork).Msg("old scene directory found; deleting")
		if err := os.RemoveAll(sceneWork); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(sceneWork, 0o755); err != nil {
		return nil, err
	}

	sceneDir, err := filepath.Abs(s.Dir)
	if err != nil {
		return nil, err
	}
	link := filepath.Join(sceneWork, filepath.Base(s.Dir))
	if err := os.Symlink(sceneDir, link); err != nil {
		return nil, fmt.Errorf("link scene: %w", err)
	}

	if err := gen.Generate(ctx, sceneWork, filepath.Base(s.Dir), look, stackPar); err != nil {
		return nil, fmt.Errorf("scene %s: %w", s.Date, err)
	}

	var copied []string
	for _, pattern := range productPatterns {
		matches, err := filepath.Glob(filepath.Join(sceneWork, "PRODUCT", pattern))
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			dst, err := fsutil.CopyFile(m, cfg.ProductDir)
			if err != nil {
				return nil, err
			}
			logger.Info().Str("product", dst).Msg("collected product")
			copied = append(copied, dst)
		}
	}
	return copied, nil
}
