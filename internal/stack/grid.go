package stack

import (
	"context"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/geosar-labs/stackrtc/internal/domain"
	"github.com/geosar-labs/stackrtc/internal/fsutil"
	"github.com/geosar-labs/stackrtc/internal/geo"
	"github.com/geosar-labs/stackrtc/internal/par"
)

// generateGridParams computes each scene's snapped output grid and
// writes its parameter file (create-if-absent). Scenes are independent,
// so the stage runs on a bounded worker pool. Returns each scene's
// footprint bounding box, index-aligned with scenes.
func generateGridParams(ctx context.Context, cfg Config, scenes []domain.Scene) ([]geo.BoundingBox, error) {
	boxes := make([]geo.BoundingBox, len(scenes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := range scenes {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s := &scenes[i]
			base := strings.TrimSuffix(filepath.Base(s.Dir), ".SAFE")
			s.GridParPath = filepath.Join(cfg.WorkDir, base+"_dem.par")

			box, err := geo.SceneBoundingBox(s.Dir)
			if err != nil {
				return err
			}
			boxes[i] = box

			if fsutil.Exists(s.GridParPath) {
				logger.Info().Str("par", s.GridParPath).Msg("grid parameter file exists; skipping")
				return nil
			}

			ext, err := geo.ProjectBoundingBox(box)
			if err != nil {
				return err
			}
			logger.Debug().
				Str("scene", base).
				Floats64("extent", []float64{ext.YMin, ext.YMax, ext.XMin, ext.XMax}).
				Msg("projected extent")
			ext = geo.SnapOutward(ext, cfg.SnapInterval)
			logger.Debug().
				Str("scene", base).
				Floats64("extent", []float64{ext.YMin, ext.YMax, ext.XMin, ext.XMax}).
				Msg("snapped extent")

			gp := domain.GridParameters{
				Title:         base,
				Zone:          ext.Zone,
				FalseNorthing: ext.FalseNorthing,
				DataType:      domain.DataTypeFloat,
				PixelSpacing:  cfg.Resolution,
				Width:         geo.GridSize(ext.XMin, ext.XMax, cfg.Resolution),
				Height:        geo.GridSize(ext.YMin, ext.YMax, cfg.Resolution),
				XMin:          ext.XMin,
				XMax:          ext.XMax,
				YMin:          ext.YMin,
				YMax:          ext.YMax,
			}
			return par.WriteGridPar(s.GridParPath, gp)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return boxes, nil
}
