package ports

import "context"

// Ingestor converts a raw scene into a single-polarization multi-looked
// amplitude grid. Implementations write the grid to outPath and its
// parameter file to outPath+".par". Fails if the scene lacks the
// requested polarization.
type Ingestor interface {
	Multilook(ctx context.Context, workDir, sceneDir, polarization string, lookFactor float64, outPath string) error
}

// OffsetTool estimates the geometric offset between two multi-look
// grids. The offset parameter file passed through these calls is
// created once per pair and carries the fitted polynomials afterwards.
type OffsetTool interface {
	// CreatePairParams seeds a new offset parameter file from the two
	// scenes' own parameter files and the estimator-option template.
	CreatePairParams(ctx context.Context, workDir, parA, parB, diffPar, templatePath string) error

	// InitOffset runs the cheap single-patch initial estimate (tier 1).
	// Returns domain.ErrOffsetEstimation when no usable estimate comes
	// out; callers fall back to the multi-patch search.
	InitOffset(ctx context.Context, workDir, mliA, mliB, diffPar string) error

	// MatchOffsets runs the multi-patch cross-correlation search
	// (tier 2), writing candidate offsets and their SNR values.
	MatchOffsets(ctx context.Context, workDir, mliA, mliB, diffPar, offsPath, snrPath string) error

	// FitOffsets fits the offset polynomials to the candidate matches.
	// Returns domain.ErrInsufficientSNR when no patch meets the
	// correlation threshold.
	FitOffsets(ctx context.Context, workDir, offsPath, snrPath, diffPar, culledPath string) error
}

// ProductGenerator invokes RTC product generation for one scene inside
// its own working subdirectory. stackPar, when non-empty, is the
// rewritten offset parameter file carrying the accumulated stack
// correction. Outputs land under workDir/PRODUCT.
type ProductGenerator interface {
	Generate(ctx context.Context, workDir, scene string, lookFactor int, stackPar string) error
}
