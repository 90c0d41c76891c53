package domain

import (
	"math"

	audience "github.com/reshetovitsme/audience-reach/internal/modules/audience/domain"
	"github.com/reshetovitsme/audience-reach/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// Stats is the population snapshot the estimator works against.
// It is loaded once at startup and treated as immutable afterwards.
type Stats struct {
	BaseTotal      int                          `json:"base_total" yaml:"base_total"`
	Segments       map[audience.SegmentID]int   `json:"segments" yaml:"segments"`
	Channels       map[audience.Channel]int     `json:"channels" yaml:"channels"`
	ChannelShares  map[audience.Channel]float64 `json:"channel_shares" yaml:"channel_shares"`
	GroupSize      int                          `json:"group_size" yaml:"group_size"`
	DegenInterests []string                     `json:"degen_interests" yaml:"degen_interests"`
	Multipliers    Multipliers                  `json:"multipliers" yaml:"multipliers"`
}

// Multipliers are the reach model constants
type Multipliers struct {
	XPFloor            float64                         `json:"xp_floor" yaml:"xp_floor"`
	TrustFloor         float64                         `json:"trust_floor" yaml:"trust_floor"`
	LastActive         map[audience.LastActive]float64 `json:"last_active" yaml:"last_active"`
	WalletConnected    float64                         `json:"wallet_connected" yaml:"wallet_connected"`
	WalletMissing      float64                         `json:"wallet_missing" yaml:"wallet_missing"`
	ReferralFloor      float64                         `json:"referral_floor" yaml:"referral_floor"`
	ReferralSaturation int                             `json:"referral_saturation" yaml:"referral_saturation"`
	LocationPerCountry float64                         `json:"location_per_country" yaml:"location_per_country"`
	LocationCap        float64                         `json:"location_cap" yaml:"location_cap"`
	LanguagePerCode    float64                         `json:"language_per_code" yaml:"language_per_code"`
	LanguageCap        float64                         `json:"language_cap" yaml:"language_cap"`
}

// Default returns the built-in population snapshot
func Default() *Stats {
	return &Stats{
		BaseTotal: 15420,
		Segments: map[audience.SegmentID]int{
			audience.SegmentIDExplorer: 4626,
			audience.SegmentIDBuilder:  3084,
			audience.SegmentIDGrinder:  3855,
			audience.SegmentIDLurker:   2313,
			audience.SegmentIDDegen:    1542,
		},
		Channels: map[audience.Channel]int{
			audience.ChannelDiscord:  8944,
			audience.ChannelTelegram: 5243,
			audience.ChannelLine:     1233,
		},
		ChannelShares: map[audience.Channel]float64{
			audience.ChannelDiscord:  0.58,
			audience.ChannelTelegram: 0.34,
			audience.ChannelLine:     0.08,
		},
		GroupSize: 200,
		DegenInterests: []string{
			"trading", "airdrops", "defi", "farming", "memecoin",
			"alpha", "ido", "nft-flipping", "arbitrage", "leverage",
		},
		Multipliers: Multipliers{
			XPFloor:    0.1,
			TrustFloor: 0.3,
			LastActive: map[audience.LastActive]float64{
				audience.LastActiveToday:    0.15,
				audience.LastActive3days:    0.35,
				audience.LastActive7days:    0.65,
				audience.LastActiveInactive: 0.10,
			},
			WalletConnected:    0.42,
			WalletMissing:      0.58,
			ReferralFloor:      0.1,
			ReferralSaturation: 10,
			LocationPerCountry: 0.08,
			LocationCap:        0.8,
			LanguagePerCode:    0.12,
			LanguageCap:        0.9,
		},
	}
}

// Validate checks the internal consistency of the snapshot
func (s *Stats) Validate() error {
	if s.BaseTotal <= 0 {
		return oops.With("base_total", s.BaseTotal).Wrap(errors.ErrInvalidStats)
	}
	if s.GroupSize <= 0 {
		return oops.With("group_size", s.GroupSize).Wrap(errors.ErrInvalidStats)
	}

	for _, id := range audience.SegmentIDs() {
		if s.Segments[id] < 0 {
			return oops.With("segment", id, "size", s.Segments[id]).Wrap(errors.ErrInvalidStats)
		}
	}
	if sum := lo.Sum(lo.Values(s.Segments)); sum != s.BaseTotal {
		return oops.With("segments_total", sum, "base_total", s.BaseTotal, "context", "global segments must cover the base population").Wrap(errors.ErrInvalidStats)
	}

	for ch, share := range s.ChannelShares {
		if share < 0 || share > 1 || math.IsNaN(share) {
			return oops.With("channel", ch, "share", share).Wrap(errors.ErrInvalidStats)
		}
	}
	if sum := lo.Sum(lo.Values(s.ChannelShares)); sum > 1+1e-9 {
		return oops.With("shares_total", sum, "context", "channel shares exceed the population").Wrap(errors.ErrInvalidStats)
	}

	m := s.Multipliers
	if m.ReferralSaturation <= 0 {
		return oops.With("referral_saturation", m.ReferralSaturation).Wrap(errors.ErrInvalidStats)
	}
	for name, v := range map[string]float64{
		"xp_floor":             m.XPFloor,
		"trust_floor":          m.TrustFloor,
		"wallet_connected":     m.WalletConnected,
		"wallet_missing":       m.WalletMissing,
		"referral_floor":       m.ReferralFloor,
		"location_per_country": m.LocationPerCountry,
		"location_cap":         m.LocationCap,
		"language_per_code":    m.LanguagePerCode,
		"language_cap":         m.LanguageCap,
	} {
		if v <= 0 || v > 1 {
			return oops.With("multiplier", name, "value", v).Wrap(errors.ErrInvalidStats)
		}
	}
	return nil
}

// Share returns the configured share of ch, zero for unknown channels
func (s *Stats) Share(ch audience.Channel) float64 {
	return s.ChannelShares[ch]
}
