package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/reshetovitsme/audience-reach/internal/modules/audience/domain"
	populationDomain "github.com/reshetovitsme/audience-reach/internal/modules/population/domain"
	"github.com/samber/lo"
)

// ReachEstimator shrinks the base population by one independent factor per enabled filter
type ReachEstimator struct {
	m populationDomain.Multipliers
}

// NewReachEstimator creates a reach estimator over the given constants
func NewReachEstimator(m populationDomain.Multipliers) *ReachEstimator {
	return &ReachEstimator{m: m}
}

// Factors lists the multipliers the enabled filters apply, each within (0, 1]
func (r *ReachEstimator) Factors(b domain.BehaviorFilters, d domain.DemographicFilters) []domain.Factor {
	var factors []domain.Factor
	add := func(label string, multiplier float64) {
		factors = append(factors, domain.Factor{Label: label, Multiplier: multiplier})
	}

	if b.XPLevel.Enabled {
		width := float64(b.XPLevel.Max-b.XPLevel.Min) / 100
		add(fmt.Sprintf("XP %d-%d", b.XPLevel.Min, b.XPLevel.Max), lo.Clamp(width, r.m.XPFloor, 1))
	}

	if b.TrustScore.Enabled {
		floor := r.m.TrustFloor
		v := floor + (float64(b.TrustScore.Value)/100)*(1-floor)
		add(fmt.Sprintf("Trust ≥%d", b.TrustScore.Value), lo.Clamp(v, floor, 1))
	}

	if b.LastActive.Enabled {
		if v, ok := r.m.LastActive[b.LastActive.Value]; ok {
			add("Last active "+b.LastActive.Value.String(), v)
		}
	}

	if b.ConnectedWallet.Enabled {
		if b.ConnectedWallet.Value {
			add("Wallet connected", r.m.WalletConnected)
		} else {
			add("No wallet", r.m.WalletMissing)
		}
	}

	if b.ReferredUsers.Enabled && b.ReferredUsers.Value > 0 {
		floor := r.m.ReferralFloor
		v := floor + (float64(b.ReferredUsers.Value)/float64(r.m.ReferralSaturation))*(1-floor)
		add(fmt.Sprintf("Referred ≥%d", b.ReferredUsers.Value), min(v, 1))
	}

	if n := distinctCodes(d.Location); n > 0 {
		add(fmt.Sprintf("%d location(s)", n), min(float64(n)*r.m.LocationPerCountry, r.m.LocationCap))
	}

	if n := distinctCodes(d.Language); n > 0 {
		add(fmt.Sprintf("%d language(s)", n), min(float64(n)*r.m.LanguagePerCode, r.m.LanguageCap))
	}

	return factors
}

// distinctCodes counts non-empty codes, ignoring case and repeats
func distinctCodes(codes []string) int {
	normalized := lo.FilterMap(codes, func(c string, _ int) (string, bool) {
		c = strings.ToUpper(strings.TrimSpace(c))
		return c, c != ""
	})
	return len(lo.Uniq(normalized))
}

// EstimateTotal applies every factor to baseTotal and floors the result
func (r *ReachEstimator) EstimateTotal(b domain.BehaviorFilters, d domain.DemographicFilters, baseTotal int) int {
	return applyFactors(baseTotal, r.Factors(b, d))
}

func applyFactors(baseTotal int, factors []domain.Factor) int {
	if baseTotal <= 0 {
		return 0
	}
	total := float64(baseTotal)
	for _, f := range factors {
		total *= f.Multiplier
	}
	return max(int(math.Floor(total)), 0)
}
