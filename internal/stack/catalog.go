package stack

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/geosar-labs/stackrtc/internal/domain"
	"github.com/geosar-labs/stackrtc/internal/fsutil"
)

// buildCatalog resolves the input identifiers into a date-sorted scene
// sequence. Zip archives are extracted into the working directory and
// the scene is rewritten to point at the extracted directory.
func buildCatalog(cfg Config) ([]domain.Scene, error) {
	scenes := make([]domain.Scene, 0, len(cfg.Scenes))
	for _, in := range cfg.Scenes {
		info, err := os.Stat(in)
		if err != nil {
			return nil, fmt.Errorf("input scene %s: %w", in, err)
		}

		dir := in
		if !info.IsDir() {
			if !fsutil.IsZip(in) {
				return nil, fmt.Errorf("input scene %s: not a directory or zip archive", in)
			}
			logger.Info().Str("archive", in).Msg("extracting scene archive")
			if err := fsutil.ExtractZip(in, cfg.WorkDir); err != nil {
				return nil, err
			}
			base := strings.TrimSuffix(filepath.Base(in), ".zip") + ".SAFE"
			dir = filepath.Join(cfg.WorkDir, base)
			if !fsutil.Exists(dir) {
				return nil, fmt.Errorf("archive %s did not contain %s", in, base)
			}
		}

		date, err := domain.DateToken(dir, domain.SceneSeparator)
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, domain.Scene{Name: in, Dir: dir, Date: date})
	}

	domain.SortByDate(scenes)
	for _, s := range scenes {
		logger.Info().Str("scene", filepath.Base(s.Dir)).Str("date", s.Date).Msg("cataloged scene")
	}
	return scenes, nil
}

// verifyDates checks that every scene's multi-look grid carries the
// same date token as the scene it was derived from. A disagreement
// means offsets would be chained between mismatched scenes, so the run
// aborts before any estimation.
func verifyDates(scenes []domain.Scene) error {
	for _, s := range scenes {
		tok, err := domain.DateToken(s.MLIPath, domain.GridSeparator)
		if err != nil {
			return err
		}
		if tok != s.Date {
			return fmt.Errorf("%w: scene %s has grid date %s", domain.ErrDateMismatch, s.Date, tok)
		}
	}
	return nil
}
