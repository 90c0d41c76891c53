package service

import (
	"github.com/reshetovitsme/audience-reach/internal/modules/audience/domain"
	"github.com/samber/lo"
)

// Normalize turns raw segment scores into shares that sum to 1 across the
// fixed segments. When nothing scored, every segment gets an equal share.
// Negative scores count as zero.
func Normalize(scores map[domain.SegmentID]float64) map[domain.SegmentID]float64 {
	ids := domain.SegmentIDs()
	shares := make(map[domain.SegmentID]float64, len(ids))

	total := lo.SumBy(ids, func(id domain.SegmentID) float64 {
		return max(scores[id], 0)
	})
	if total <= 0 {
		equal := 1 / float64(len(ids))
		for _, id := range ids {
			shares[id] = equal
		}
		return shares
	}

	for _, id := range ids {
		shares[id] = max(scores[id], 0) / total
	}
	return shares
}

// RawScores projects scorer output onto plain scores
func RawScores(scores map[domain.SegmentID]SegmentScore) map[domain.SegmentID]float64 {
	return lo.MapValues(scores, func(s SegmentScore, _ domain.SegmentID) float64 {
		return s.Score
	})
}
