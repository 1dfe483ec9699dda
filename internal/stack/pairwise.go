package stack

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/geosar-labs/stackrtc/internal/domain"
	"github.com/geosar-labs/stackrtc/internal/fsutil"
	"github.com/geosar-labs/stackrtc/internal/par"
	"github.com/geosar-labs/stackrtc/internal/ports"
)

// estimatePairOffsets walks the adjacent pairs of the sorted chain in
// strict order and produces one OffsetEstimate per pair. A pair whose
// offset parameter file already exists is not re-estimated; its
// polynomials are read back as-is.
func estimatePairOffsets(ctx context.Context, cfg Config, scenes []domain.Scene, tool ports.OffsetTool) ([]domain.OffsetEstimate, error) {
	template, err := par.WriteTemplate(cfg.WorkDir)
	if err != nil {
		return nil, err
	}

	pairs := domain.AdjacentPairs(scenes)
	estimates := make([]domain.OffsetEstimate, 0, len(pairs))
	for _, p := range pairs {
		diffPar := filepath.Join(cfg.WorkDir, p.Key()+".par")
		if fsutil.Exists(diffPar) {
			logger.Info().Str("par", diffPar).Msg("offset parameter file exists; skipping estimation")
		} else if err := estimatePair(ctx, cfg, p, diffPar, template, tool); err != nil {
			return nil, err
		}

		ra, err := par.ReadPolynomial(diffPar, par.KeyRangePoly)
		if err != nil {
			return nil, fmt.Errorf("pair %s: %w", p.Key(), err)
		}
		az, err := par.ReadPolynomial(diffPar, par.KeyAzimuthPoly)
		if err != nil {
			return nil, fmt.Errorf("pair %s: %w", p.Key(), err)
		}
		logger.Info().
			Str("pair", p.Key()).
			Float64("range", ra.C0).
			Float64("azimuth", az.C0).
			Msg("pairwise offset")

		estimates = append(estimates, domain.OffsetEstimate{Pair: p, Range: ra, Azimuth: az})
	}
	return estimates, nil
}

// estimatePair runs the tiered estimation for one pair: the cheap
// single-patch initial estimate first, the multi-patch correlation
// search only when that fails. A tier-2 failure is fatal; there is no
// tier 3.
func estimatePair(ctx context.Context, cfg Config, p domain.Pair, diffPar, template string, tool ports.OffsetTool) error {
	a, b := p.Earlier, p.Later
	if err := tool.CreatePairParams(ctx, cfg.WorkDir, a.ParPath(), b.ParPath(), diffPar, template); err != nil {
		return fmt.Errorf("pair %s: %w", p.Key(), err)
	}

	err := tool.InitOffset(ctx, cfg.WorkDir, a.MLIPath, b.MLIPath, diffPar)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrOffsetEstimation) {
		return fmt.Errorf("pair %s: %w", p.Key(), err)
	}
	logger.Warn().Str("pair", p.Key()).Err(err).
		Msg("single-patch estimate failed; falling back to multi-patch search")

	base := strings.TrimSuffix(a.MLIPath, ".mgrd")
	offs := base + ".offs"
	snr := base + ".snr"
	culled := base + ".coffs"

	if err := tool.MatchOffsets(ctx, cfg.WorkDir, a.MLIPath, b.MLIPath, diffPar, offs, snr); err != nil {
		return fmt.Errorf("pair %s: %w", p.Key(), err)
	}
	if err := tool.FitOffsets(ctx, cfg.WorkDir, offs, snr, diffPar, culled); err != nil {
		return fmt.Errorf("pair %s: %w", p.Key(), err)
	}
	return nil
}
