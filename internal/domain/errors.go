package domain

import "errors"

// Domain errors for the stack pipeline. These are returned through the
// public API and can be checked with errors.Is. Only the tier-1 offset
// failure is ever recovered; everything else aborts the run.
var (
	// ErrDateExtraction is returned when a scene name has no date token
	// at the expected field position.
	ErrDateExtraction = errors.New("stackrtc: date token not found in scene name")

	// ErrDateMismatch is returned when the sorted multi-look grid dates
	// disagree with the sorted source scene dates.
	ErrDateMismatch = errors.New("stackrtc: scene and multi-look date sequences disagree")

	// ErrGeometry is returned when a scene's bounding box cannot be
	// projected to a UTM grid.
	ErrGeometry = errors.New("stackrtc: bounding box cannot be projected")

	// ErrOffsetEstimation is returned by the single-patch (tier 1)
	// offset estimate. Callers fall back to the multi-patch search.
	ErrOffsetEstimation = errors.New("stackrtc: single-patch offset estimate failed")

	// ErrInsufficientSNR is returned when no correlation patch meets the
	// SNR threshold, leaving nothing to fit. A broken link in the chain
	// invalidates all downstream accumulation, so this is fatal.
	ErrInsufficientSNR = errors.New("stackrtc: no correlation patch met the SNR threshold")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("stackrtc: invalid configuration")
)
