package report

import (
	"strings"
	"testing"
	"time"

	"github.com/reshetovitsme/audience-reach/internal/modules/audience/domain"
)

func TestEstimate(t *testing.T) {
	est := domain.AudienceEstimate{
		AudienceType:  domain.AudienceTypeCustom,
		TotalReach:    100,
		ActiveFilters: 2,
		Segments: []domain.UserSegment{{
			SegmentInfo:    domain.SegmentInfo{ID: domain.SegmentIDBuilder, Name: "Builder", Icon: "🏗️"},
			EstimatedCount: 100,
			Percentage:     100,
			Conditions:     []string{"Wallet connected"},
		}},
		Channels: domain.ChannelBreakdown{Discord: 58, Telegram: 34, Line: 8, Groups: 1},
		Factors:  []domain.Factor{{Label: "Wallet connected", Multiplier: 0.42}},
	}

	got := Estimate(est)
	for _, want := range []string{
		"Estimated reach: 100 users",
		"Active filters: 2",
		"🏗️ Builder: 100 (100.0%)",
		"• Wallet connected",
		"Discord: 58",
		"Groups: 1",
		"× 0.42 Wallet connected",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
	if strings.HasSuffix(got, "\n") {
		t.Error("expected trailing newlines to be trimmed")
	}
}

func TestEstimateEmptyAndGlobal(t *testing.T) {
	empty := Estimate(domain.AudienceEstimate{AudienceType: domain.AudienceTypeCustom})
	if !strings.Contains(empty, "No segment is reachable") {
		t.Errorf("unexpected empty rendering:\n%s", empty)
	}
	if strings.Contains(empty, "Reach factors") {
		t.Error("factors section must be omitted when there are none")
	}

	global := Estimate(domain.AudienceEstimate{AudienceType: domain.AudienceTypeGlobal, TotalReach: 15420})
	if !strings.Contains(global, "filters ignored") || strings.Contains(global, "Active filters") {
		t.Errorf("unexpected global rendering:\n%s", global)
	}
}

func TestModel(t *testing.T) {
	m := domain.NewFilterModel()
	if got := Model(m); !strings.Contains(got, "No filters enabled") {
		t.Errorf("unexpected empty model:\n%s", got)
	}

	at := time.Date(2026, 11, 1, 9, 30, 0, 0, time.UTC)
	m.Delivery.Schedule = domain.ScheduleScheduled
	m.Delivery.ScheduledDate = &at
	m.Behavior.XPLevel = domain.RangeFilter{Enabled: true, Min: 10, Max: 40}
	m.Behavior.ConnectedWallet = domain.BoolFilter{Enabled: true}
	m.Behavior.TaggedInterests = domain.SetFilter{Enabled: true, Values: []string{"defi", "nft"}}
	m.Demographic.Location = []string{"JP", "TH"}

	got := Model(m)
	for _, want := range []string{
		"Delivery: discord, dm, scheduled at 2026-11-01 09:30 UTC",
		"• XP 10-40",
		"• Wallet connected: no",
		"• Interests: defi, nft",
		"• Location: JP, TH",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}
