package service

import (
	"math"
	"sort"

	"github.com/reshetovitsme/audience-reach/internal/modules/audience/domain"
	populationDomain "github.com/reshetovitsme/audience-reach/internal/modules/population/domain"
)

const globalCondition = "Global audience, filters ignored"

// Estimator computes audience estimates against an immutable population snapshot.
// It holds no mutable state and is safe for concurrent use.
type Estimator struct {
	stats    *populationDomain.Stats
	scorer   *Scorer
	reach    *ReachEstimator
	channels *ChannelDistributor
}

// New creates an estimator with the built-in rule table
func New(stats *populationDomain.Stats) *Estimator {
	return &Estimator{
		stats:    stats,
		scorer:   NewScorer(DefaultRules(stats.DegenInterests)),
		reach:    NewReachEstimator(stats.Multipliers),
		channels: NewChannelDistributor(stats.ChannelShares, stats.GroupSize),
	}
}

// Stats returns the population snapshot. Callers must not modify it.
func (e *Estimator) Stats() *populationDomain.Stats {
	return e.stats
}

// Estimate computes the reach of m from scratch
func (e *Estimator) Estimate(m domain.FilterModel) domain.AudienceEstimate {
	if m.IsGlobal() {
		return e.Global(m.Delivery.Channel)
	}

	scores := e.scorer.Score(m.Behavior)
	shares := Normalize(RawScores(scores))
	factors := e.reach.Factors(m.Behavior, m.Demographic)
	total := applyFactors(e.stats.BaseTotal, factors)
	counts := apportion(total, shares)

	segments := make([]domain.UserSegment, 0, len(counts))
	for _, info := range domain.Segments() {
		count := counts[info.ID]
		if count == 0 {
			continue
		}
		segments = append(segments, domain.UserSegment{
			SegmentInfo:    info,
			EstimatedCount: count,
			Percentage:     percent(shares[info.ID]),
			Conditions:     scores[info.ID].Conditions,
		})
	}

	return domain.AudienceEstimate{
		AudienceType:  domain.AudienceTypeCustom,
		TotalReach:    total,
		ActiveFilters: m.ActiveFilters(),
		Segments:      segments,
		Channels:      e.channels.Distribute(total, m.Delivery.Channel),
		Factors:       factors,
	}
}

// Global returns the fixed breakdown of the whole population
func (e *Estimator) Global(channel domain.Channel) domain.AudienceEstimate {
	base := e.stats.BaseTotal

	segments := make([]domain.UserSegment, 0, len(e.stats.Segments))
	for _, info := range domain.Segments() {
		count := e.stats.Segments[info.ID]
		if count <= 0 {
			continue
		}
		segments = append(segments, domain.UserSegment{
			SegmentInfo:    info,
			EstimatedCount: count,
			Percentage:     percent(ratio(count, base)),
			Conditions:     []string{globalCondition},
		})
	}

	selected, ok := e.stats.Channels[channel]
	if !ok {
		selected = base
	}

	return domain.AudienceEstimate{
		AudienceType: domain.AudienceTypeGlobal,
		TotalReach:   base,
		Segments:     segments,
		Channels: domain.ChannelBreakdown{
			Discord:  e.stats.Channels[domain.ChannelDiscord],
			Telegram: e.stats.Channels[domain.ChannelTelegram],
			Line:     e.stats.Channels[domain.ChannelLine],
			Groups:   e.channels.Groups(selected),
		},
	}
}

// apportion splits total by shares with the largest remainder method, so the
// counts sum to exactly total and each differs from total*share by less than one.
func apportion(total int, shares map[domain.SegmentID]float64) map[domain.SegmentID]int {
	ids := domain.SegmentIDs()
	counts := make(map[domain.SegmentID]int, len(ids))
	if total <= 0 {
		return counts
	}

	type remainder struct {
		id   domain.SegmentID
		frac float64
	}
	rems := make([]remainder, 0, len(ids))
	assigned := 0
	for _, id := range ids {
		exact := float64(total) * shares[id]
		whole := math.Floor(exact)
		counts[id] = int(whole)
		assigned += int(whole)
		rems = append(rems, remainder{id: id, frac: exact - whole})
	}

	sort.SliceStable(rems, func(i, j int) bool { return rems[i].frac > rems[j].frac })
	for i := 0; assigned < total && i < len(rems); i++ {
		if rems[i].frac <= 0 {
			break
		}
		counts[rems[i].id]++
		assigned++
	}
	return counts
}

// ratio is 0 when base is empty
func ratio(count, base int) float64 {
	if base <= 0 {
		return 0
	}
	return float64(count) / float64(base)
}

func percent(share float64) float64 {
	return math.Round(share*1000) / 10
}
