package service

import (
	"strings"

	"github.com/reshetovitsme/audience-reach/internal/modules/audience/domain"
	"github.com/samber/lo"
)

// Rule adds Weight to a segment when Match holds for the enabled filters
type Rule struct {
	Label  string
	Weight float64
	Match  func(b domain.BehaviorFilters) bool
}

// SegmentRules is the rule set of one segment. Its score never exceeds Cap.
type SegmentRules struct {
	Segment domain.SegmentID
	Cap     float64
	Rules   []Rule
}

// SegmentScore is the raw score of a segment with the labels of the rules that matched
type SegmentScore struct {
	Score      float64
	Conditions []string
}

// Scorer folds the rule table over a set of behavior filters
type Scorer struct {
	table []SegmentRules
}

// NewScorer creates a scorer over table
func NewScorer(table []SegmentRules) *Scorer {
	return &Scorer{table: table}
}

// Score evaluates every rule of every segment.
// Segments missing from the table score zero.
func (s *Scorer) Score(b domain.BehaviorFilters) map[domain.SegmentID]SegmentScore {
	scores := make(map[domain.SegmentID]SegmentScore, len(domain.SegmentIDs()))
	for _, id := range domain.SegmentIDs() {
		scores[id] = SegmentScore{Conditions: []string{}}
	}

	for _, seg := range s.table {
		acc := scores[seg.Segment]
		for _, rule := range seg.Rules {
			if rule.Match(b) {
				acc.Score += rule.Weight
				acc.Conditions = append(acc.Conditions, rule.Label)
			}
		}
		acc.Score = min(acc.Score, seg.Cap)
		scores[seg.Segment] = acc
	}
	return scores
}

// DefaultRules is the built-in rule table. degenInterests is the vocabulary
// that marks a tagged interest as speculative.
func DefaultRules(degenInterests []string) []SegmentRules {
	vocabulary := lo.Map(degenInterests, func(s string, _ int) string { return strings.ToLower(s) })

	return []SegmentRules{
		{
			Segment: domain.SegmentIDExplorer,
			Cap:     0.45,
			Rules: []Rule{
				{Label: "Low XP (≤30)", Weight: 0.40, Match: func(b domain.BehaviorFilters) bool {
					return b.XPLevel.Enabled && b.XPLevel.Max <= 30
				}},
				{Label: "No wallet connected", Weight: 0.20, Match: func(b domain.BehaviorFilters) bool {
					return b.ConnectedWallet.Enabled && !b.ConnectedWallet.Value
				}},
				{Label: "Recently active", Weight: 0.15, Match: func(b domain.BehaviorFilters) bool {
					return activeIn(b, domain.LastActiveToday, domain.LastActive3days)
				}},
			},
		},
		{
			Segment: domain.SegmentIDBuilder,
			Cap:     0.55,
			Rules: []Rule{
				{Label: "High XP (≥50)", Weight: 0.35, Match: func(b domain.BehaviorFilters) bool {
					return b.XPLevel.Enabled && b.XPLevel.Min >= 50
				}},
				{Label: "Mission streak ≥10", Weight: 0.25, Match: func(b domain.BehaviorFilters) bool {
					return b.MissionStreak.Enabled && b.MissionStreak.Value >= 10
				}},
				{Label: "Wallet connected", Weight: 0.20, Match: walletRequired},
				{Label: "Memory proof submitted", Weight: 0.15, Match: func(b domain.BehaviorFilters) bool {
					return b.MemoryProofSubmitted.Enabled && b.MemoryProofSubmitted.Value
				}},
				{Label: "Trust score ≥70", Weight: 0.10, Match: func(b domain.BehaviorFilters) bool {
					return b.TrustScore.Enabled && b.TrustScore.Value >= 70
				}},
			},
		},
		{
			Segment: domain.SegmentIDGrinder,
			Cap:     0.25,
			Rules: []Rule{
				{Label: "XP ≥40", Weight: 0.25, Match: func(b domain.BehaviorFilters) bool {
					return b.XPLevel.Enabled && b.XPLevel.Min >= 40
				}},
				{Label: "Trust score <50", Weight: 0.30, Match: func(b domain.BehaviorFilters) bool {
					return b.TrustScore.Enabled && b.TrustScore.Value < 50
				}},
				{Label: "Few failed missions (≤3)", Weight: 0.25, Match: func(b domain.BehaviorFilters) bool {
					return b.FailedMissions.Enabled && b.FailedMissions.Value <= 3
				}},
				{Label: "Active today", Weight: 0.15, Match: func(b domain.BehaviorFilters) bool {
					return activeIn(b, domain.LastActiveToday)
				}},
			},
		},
		{
			Segment: domain.SegmentIDLurker,
			Cap:     0.15,
			Rules: []Rule{
				{Label: "Inactive 7+ days", Weight: 0.40, Match: func(b domain.BehaviorFilters) bool {
					return activeIn(b, domain.LastActive7days, domain.LastActiveInactive)
				}},
				{Label: "Very low XP (≤20)", Weight: 0.30, Match: func(b domain.BehaviorFilters) bool {
					return b.XPLevel.Enabled && b.XPLevel.Max <= 20
				}},
				{Label: "No mission streak", Weight: 0.20, Match: func(b domain.BehaviorFilters) bool {
					return b.MissionStreak.Enabled && b.MissionStreak.Value == 0
				}},
			},
		},
		{
			Segment: domain.SegmentIDDegen,
			Cap:     0.35,
			Rules: []Rule{
				{Label: "Referred 3+ users", Weight: 0.30, Match: func(b domain.BehaviorFilters) bool {
					return b.ReferredUsers.Enabled && b.ReferredUsers.Value >= 3
				}},
				{Label: "Wallet connected", Weight: 0.25, Match: walletRequired},
				{Label: "Degen interests tagged", Weight: 0.30, Match: func(b domain.BehaviorFilters) bool {
					if !b.TaggedInterests.Enabled {
						return false
					}
					return lo.SomeBy(b.TaggedInterests.Values, func(tag string) bool {
						return lo.Contains(vocabulary, strings.ToLower(strings.TrimSpace(tag)))
					})
				}},
				{Label: "XP ≥20", Weight: 0.15, Match: func(b domain.BehaviorFilters) bool {
					return b.XPLevel.Enabled && b.XPLevel.Min >= 20
				}},
			},
		},
	}
}

func walletRequired(b domain.BehaviorFilters) bool {
	return b.ConnectedWallet.Enabled && b.ConnectedWallet.Value
}

func activeIn(b domain.BehaviorFilters, buckets ...domain.LastActive) bool {
	return b.LastActive.Enabled && lo.Contains(buckets, b.LastActive.Value)
}
