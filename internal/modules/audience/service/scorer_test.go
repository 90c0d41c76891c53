package service

import (
	"math"
	"slices"
	"testing"

	"github.com/reshetovitsme/audience-reach/internal/modules/audience/domain"
	populationDomain "github.com/reshetovitsme/audience-reach/internal/modules/population/domain"
)

func defaultScorer() *Scorer {
	return NewScorer(DefaultRules(populationDomain.Default().DegenInterests))
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreNoFilters(t *testing.T) {
	scores := defaultScorer().Score(domain.BehaviorFilters{})

	if len(scores) != 5 {
		t.Fatalf("expected 5 segments, got %d", len(scores))
	}
	for id, s := range scores {
		if s.Score != 0 {
			t.Errorf("%s: expected score 0, got %v", id, s.Score)
		}
		if len(s.Conditions) != 0 {
			t.Errorf("%s: expected no conditions, got %v", id, s.Conditions)
		}
	}
}

func TestScoreDisabledFiltersNeverContribute(t *testing.T) {
	b := domain.BehaviorFilters{
		XPLevel:              domain.RangeFilter{Min: 60, Max: 100},
		MissionStreak:        domain.IntFilter{Value: 20},
		LastActive:           domain.LastActiveFilter{Value: domain.LastActiveToday},
		FailedMissions:       domain.IntFilter{Value: 1},
		TrustScore:           domain.IntFilter{Value: 90},
		ConnectedWallet:      domain.BoolFilter{Value: true},
		ReferredUsers:        domain.IntFilter{Value: 9},
		MemoryProofSubmitted: domain.BoolFilter{Value: true},
		TaggedInterests:      domain.SetFilter{Values: []string{"defi"}},
	}

	for id, s := range defaultScorer().Score(b) {
		if s.Score != 0 {
			t.Errorf("%s: disabled filters produced score %v", id, s.Score)
		}
	}
}

func TestScoreDegenInterests(t *testing.T) {
	b := domain.BehaviorFilters{
		TaggedInterests: domain.SetFilter{Enabled: true, Values: []string{"trading"}},
	}

	degen := defaultScorer().Score(b)[domain.SegmentIDDegen]
	if !approx(degen.Score, 0.30) {
		t.Errorf("expected degen score 0.30, got %v", degen.Score)
	}
	if !slices.Contains(degen.Conditions, "Degen interests tagged") {
		t.Errorf("expected degen interests condition, got %v", degen.Conditions)
	}
}

func TestScoreInterestsOutsideVocabulary(t *testing.T) {
	b := domain.BehaviorFilters{
		TaggedInterests: domain.SetFilter{Enabled: true, Values: []string{"gardening", "chess"}},
	}

	if s := defaultScorer().Score(b)[domain.SegmentIDDegen]; s.Score != 0 {
		t.Errorf("expected no degen score, got %v", s.Score)
	}
}

func TestScoreInterestMatchIgnoresCase(t *testing.T) {
	b := domain.BehaviorFilters{
		TaggedInterests: domain.SetFilter{Enabled: true, Values: []string{" AirDrops "}},
	}

	if s := defaultScorer().Score(b)[domain.SegmentIDDegen]; !approx(s.Score, 0.30) {
		t.Errorf("expected degen score 0.30, got %v", s.Score)
	}
}

func TestScoreCapsPerSegment(t *testing.T) {
	// every builder rule matches: 0.35+0.25+0.20+0.15+0.10 = 1.05
	b := domain.BehaviorFilters{
		XPLevel:              domain.RangeFilter{Enabled: true, Min: 60, Max: 100},
		MissionStreak:        domain.IntFilter{Enabled: true, Value: 12},
		ConnectedWallet:      domain.BoolFilter{Enabled: true, Value: true},
		MemoryProofSubmitted: domain.BoolFilter{Enabled: true, Value: true},
		TrustScore:           domain.IntFilter{Enabled: true, Value: 80},
	}

	scores := defaultScorer().Score(b)
	builder := scores[domain.SegmentIDBuilder]
	if !approx(builder.Score, 0.55) {
		t.Errorf("expected builder capped at 0.55, got %v", builder.Score)
	}
	if len(builder.Conditions) != 5 {
		t.Errorf("expected 5 builder conditions, got %v", builder.Conditions)
	}

	// grinder gets XP ≥40 only
	if s := scores[domain.SegmentIDGrinder]; !approx(s.Score, 0.25) {
		t.Errorf("expected grinder 0.25, got %v", s.Score)
	}
	// degen: wallet 0.25 + XP ≥20 0.15 = 0.40 capped at 0.35
	if s := scores[domain.SegmentIDDegen]; !approx(s.Score, 0.35) {
		t.Errorf("expected degen capped at 0.35, got %v", s.Score)
	}
}

func TestScoreRules(t *testing.T) {
	tests := []struct {
		name      string
		filters   domain.BehaviorFilters
		segment   domain.SegmentID
		want      float64
		condition string
	}{
		{
			name:      "explorer low xp",
			filters:   domain.BehaviorFilters{XPLevel: domain.RangeFilter{Enabled: true, Min: 25, Max: 30}},
			segment:   domain.SegmentIDExplorer,
			want:      0.40,
			condition: "Low XP (≤30)",
		},
		{
			name:      "explorer no wallet",
			filters:   domain.BehaviorFilters{ConnectedWallet: domain.BoolFilter{Enabled: true, Value: false}},
			segment:   domain.SegmentIDExplorer,
			want:      0.20,
			condition: "No wallet connected",
		},
		{
			name:      "explorer recent",
			filters:   domain.BehaviorFilters{LastActive: domain.LastActiveFilter{Enabled: true, Value: domain.LastActive3days}},
			segment:   domain.SegmentIDExplorer,
			want:      0.15,
			condition: "Recently active",
		},
		{
			name:      "grinder low trust",
			filters:   domain.BehaviorFilters{TrustScore: domain.IntFilter{Enabled: true, Value: 40}},
			segment:   domain.SegmentIDGrinder,
			want:      0.25,
			condition: "Trust score <50",
		},
		{
			name:      "grinder few failures",
			filters:   domain.BehaviorFilters{FailedMissions: domain.IntFilter{Enabled: true, Value: 3}},
			segment:   domain.SegmentIDGrinder,
			want:      0.25,
			condition: "Few failed missions (≤3)",
		},
		{
			name:      "lurker inactive",
			filters:   domain.BehaviorFilters{LastActive: domain.LastActiveFilter{Enabled: true, Value: domain.LastActiveInactive}},
			segment:   domain.SegmentIDLurker,
			want:      0.15,
			condition: "Inactive 7+ days",
		},
		{
			name:      "lurker zero streak",
			filters:   domain.BehaviorFilters{MissionStreak: domain.IntFilter{Enabled: true, Value: 0}},
			segment:   domain.SegmentIDLurker,
			want:      0.15,
			condition: "No mission streak",
		},
		{
			name:      "degen referrals",
			filters:   domain.BehaviorFilters{ReferredUsers: domain.IntFilter{Enabled: true, Value: 3}},
			segment:   domain.SegmentIDDegen,
			want:      0.30,
			condition: "Referred 3+ users",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := defaultScorer().Score(tt.filters)[tt.segment]
			if !approx(s.Score, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, s.Score)
			}
			if !slices.Contains(s.Conditions, tt.condition) {
				t.Errorf("expected condition %q, got %v", tt.condition, s.Conditions)
			}
		})
	}
}

func TestScoreThresholdsNotMet(t *testing.T) {
	b := domain.BehaviorFilters{
		XPLevel:        domain.RangeFilter{Enabled: true, Min: 10, Max: 45},
		MissionStreak:  domain.IntFilter{Enabled: true, Value: 5},
		FailedMissions: domain.IntFilter{Enabled: true, Value: 4},
		TrustScore:     domain.IntFilter{Enabled: true, Value: 60},
		ReferredUsers:  domain.IntFilter{Enabled: true, Value: 2},
	}

	for id, s := range defaultScorer().Score(b) {
		if s.Score != 0 {
			t.Errorf("%s: expected no score, got %v with %v", id, s.Score, s.Conditions)
		}
	}
}

func TestCustomRuleTable(t *testing.T) {
	table := []SegmentRules{{
		Segment: domain.SegmentIDLurker,
		Cap:     1,
		Rules: []Rule{{Label: "partner", Weight: 0.7, Match: func(b domain.BehaviorFilters) bool {
			return b.JoinedViaPartner.Enabled && b.JoinedViaPartner.Value == "acme"
		}}},
	}}

	scores := NewScorer(table).Score(domain.BehaviorFilters{
		JoinedViaPartner: domain.StringFilter{Enabled: true, Value: "acme"},
	})
	if !approx(scores[domain.SegmentIDLurker].Score, 0.7) {
		t.Errorf("expected 0.7, got %v", scores[domain.SegmentIDLurker].Score)
	}
	if _, ok := scores[domain.SegmentIDDegen]; !ok {
		t.Error("segments missing from the table must still be present")
	}
}
