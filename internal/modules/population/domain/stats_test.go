package domain

import (
	"errors"
	"testing"

	audience "github.com/reshetovitsme/audience-reach/internal/modules/audience/domain"
	sharedErrors "github.com/reshetovitsme/audience-reach/internal/shared/errors"
)

func TestDefaultStatsAreValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default stats invalid: %v", err)
	}
}

func TestValidateRejectsInconsistentStats(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Stats)
	}{
		{"zero base", func(s *Stats) { s.BaseTotal = 0 }},
		{"zero group size", func(s *Stats) { s.GroupSize = 0 }},
		{"segments do not cover base", func(s *Stats) { s.Segments[audience.SegmentIDDegen] = 1 }},
		{"negative segment", func(s *Stats) {
			s.Segments[audience.SegmentIDDegen] = -1
			s.Segments[audience.SegmentIDExplorer] += 1543
		}},
		{"share above one", func(s *Stats) { s.ChannelShares[audience.ChannelLine] = 1.5 }},
		{"shares exceed population", func(s *Stats) { s.ChannelShares[audience.ChannelLine] = 0.5 }},
		{"missing multiplier", func(s *Stats) { s.Multipliers.WalletConnected = 0 }},
		{"missing referral saturation", func(s *Stats) { s.Multipliers.ReferralSaturation = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(s)
			err := s.Validate()
			if !errors.Is(err, sharedErrors.ErrInvalidStats) {
				t.Errorf("expected ErrInvalidStats, got %v", err)
			}
		})
	}
}

func TestShareUnknownChannel(t *testing.T) {
	if got := Default().Share(audience.ChannelInapp); got != 0 {
		t.Errorf("expected 0 share for inapp, got %v", got)
	}
}
