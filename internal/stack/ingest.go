package stack

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/geosar-labs/stackrtc/internal/domain"
	"github.com/geosar-labs/stackrtc/internal/fsutil"
	"github.com/geosar-labs/stackrtc/internal/ports"
)

// Co-polarized channels in search order. VV is preferred when a scene
// carries both.
var coPols = []string{"vv", "hh"}

// ingestScenes produces each scene's multi-looked amplitude grid
// (create-if-absent). Scenes are independent, so the stage runs on a
// bounded worker pool. The first co-polarized grid becomes the scene's
// chain grid.
func ingestScenes(ctx context.Context, cfg Config, scenes []domain.Scene, ing ports.Ingestor) error {
	look := ingestLookFactor(cfg.Resolution)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := range scenes {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s := &scenes[i]
			for _, pol := range coPols {
				tiffs, err := filepath.Glob(filepath.Join(s.Dir, "*", "*"+pol+"*.tiff"))
				if err != nil {
					return err
				}
				for _, tiff := range tiffs {
					out := mliPath(cfg.WorkDir, tiff)
					if fsutil.Exists(out) {
						logger.Info().Str("mli", out).Msg("multi-look grid exists; skipping")
					} else {
						logger.Info().Str("mli", out).Str("pol", pol).Msg("creating multi-look grid")
						if err := ing.Multilook(ctx, cfg.WorkDir, s.Dir, strings.ToUpper(pol), look, out); err != nil {
							return fmt.Errorf("ingest %s: %w", filepath.Base(s.Dir), err)
						}
					}
					if s.MLIPath == "" {
						s.MLIPath = out
					}
				}
			}
			if s.MLIPath == "" {
				return fmt.Errorf("scene %s has no co-polarized measurement", filepath.Base(s.Dir))
			}
			return nil
		})
	}
	return g.Wait()
}

// mliPath derives the multi-look grid path from a measurement tiff
// name: the base name with its extension swapped for .mgrd, placed in
// the working directory.
func mliPath(workDir, tiff string) string {
	base := filepath.Base(tiff)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return filepath.Join(workDir, base+".mgrd")
}
