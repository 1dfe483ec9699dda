package stack

import "github.com/geosar-labs/stackrtc/internal/domain"

// accumulateOffsets left-folds the pairwise estimates into a
// reference-relative correction per non-reference scene. Result index i
// corresponds to scene i+1 of the sorted chain; the reference scene
// implicitly carries the zero correction and is never stored. The fold
// must run in chain order.
func accumulateOffsets(estimates []domain.OffsetEstimate) []domain.AccumulatedOffset {
	accum := make([]domain.AccumulatedOffset, len(estimates))
	var total domain.AccumulatedOffset
	for i, est := range estimates {
		total = total.Add(est)
		accum[i] = total
	}
	return accum
}
