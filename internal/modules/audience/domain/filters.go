package domain

import "time"

// RangeFilter is an inclusive numeric window
type RangeFilter struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Min     int  `json:"min" yaml:"min"`
	Max     int  `json:"max" yaml:"max"`
}

// IntFilter is a single numeric threshold
type IntFilter struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Value   int  `json:"value" yaml:"value"`
}

// BoolFilter requires a flag to be set or unset
type BoolFilter struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Value   bool `json:"value" yaml:"value"`
}

// StringFilter matches a single free-form value
type StringFilter struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Value   string `json:"value" yaml:"value"`
}

// LastActiveFilter selects a recency bucket
type LastActiveFilter struct {
	Enabled bool       `json:"enabled" yaml:"enabled"`
	Value   LastActive `json:"value" yaml:"value"`
}

// SetFilter matches any of a set of values
type SetFilter struct {
	Enabled bool     `json:"enabled" yaml:"enabled"`
	Values  []string `json:"values" yaml:"values"`
}

// BehaviorFilters holds the behavioral switches of a campaign.
// A disabled filter never contributes to scoring or to reach.
type BehaviorFilters struct {
	XPLevel              RangeFilter      `json:"xp_level" yaml:"xp_level"`
	MissionStreak        IntFilter        `json:"mission_streak" yaml:"mission_streak"`
	LastActive           LastActiveFilter `json:"last_active" yaml:"last_active"`
	FailedMissions       IntFilter        `json:"failed_missions" yaml:"failed_missions"`
	TrustScore           IntFilter        `json:"trust_score" yaml:"trust_score"`
	ConnectedWallet      BoolFilter       `json:"connected_wallet" yaml:"connected_wallet"`
	JoinedViaPartner     StringFilter     `json:"joined_via_partner" yaml:"joined_via_partner"`
	ReferredUsers        IntFilter        `json:"referred_users" yaml:"referred_users"`
	AgentHealth          IntFilter        `json:"agent_health" yaml:"agent_health"`
	MemoryProofSubmitted BoolFilter       `json:"memory_proof_submitted" yaml:"memory_proof_submitted"`
	TaggedInterests      SetFilter        `json:"tagged_interests" yaml:"tagged_interests"`
}

// DemographicFilters narrows the audience by who users are.
// Empty sets and empty strings mean "any".
type DemographicFilters struct {
	Location []string `json:"location" yaml:"location"`
	Language []string `json:"language" yaml:"language"`
	AgeRange string   `json:"age_range,omitempty" yaml:"age_range,omitempty"`
	Gender   string   `json:"gender,omitempty" yaml:"gender,omitempty"`
}

// DeliveryOptions describes where and when a campaign is delivered
type DeliveryOptions struct {
	Channel       Channel    `json:"channel" yaml:"channel"`
	Scope         Scope      `json:"scope" yaml:"scope"`
	Schedule      Schedule   `json:"schedule" yaml:"schedule"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty" yaml:"scheduled_date,omitempty"`
}

// FilterModel is the complete targeting state edited by an operator
type FilterModel struct {
	AudienceType AudienceType       `json:"audience_type" yaml:"audience_type"`
	Behavior     BehaviorFilters    `json:"behavior" yaml:"behavior"`
	Demographic  DemographicFilters `json:"demographic" yaml:"demographic"`
	Delivery     DeliveryOptions    `json:"delivery" yaml:"delivery"`
}

// NewFilterModel returns a custom audience with every filter disabled
func NewFilterModel() FilterModel {
	return FilterModel{
		AudienceType: AudienceTypeCustom,
		Delivery: DeliveryOptions{
			Channel:  ChannelDiscord,
			Scope:    ScopeDm,
			Schedule: ScheduleImmediate,
		},
	}
}

// IsGlobal reports whether the model targets the whole population
func (m FilterModel) IsGlobal() bool {
	return m.AudienceType == AudienceTypeGlobal
}

// Clone returns a deep copy so that callers may keep editing the original
func (m FilterModel) Clone() FilterModel {
	out := m
	out.Behavior.TaggedInterests.Values = cloneStrings(m.Behavior.TaggedInterests.Values)
	out.Demographic.Location = cloneStrings(m.Demographic.Location)
	out.Demographic.Language = cloneStrings(m.Demographic.Language)
	if m.Delivery.ScheduledDate != nil {
		t := *m.Delivery.ScheduledDate
		out.Delivery.ScheduledDate = &t
	}
	return out
}

// ActiveFilters counts enabled behavioral filters and non-empty demographic selections
func (m FilterModel) ActiveFilters() int {
	b := m.Behavior
	count := 0
	for _, enabled := range []bool{
		b.XPLevel.Enabled,
		b.MissionStreak.Enabled,
		b.LastActive.Enabled,
		b.FailedMissions.Enabled,
		b.TrustScore.Enabled,
		b.ConnectedWallet.Enabled,
		b.JoinedViaPartner.Enabled,
		b.ReferredUsers.Enabled,
		b.AgentHealth.Enabled,
		b.MemoryProofSubmitted.Enabled,
		b.TaggedInterests.Enabled,
		len(m.Demographic.Location) > 0,
		len(m.Demographic.Language) > 0,
		m.Demographic.AgeRange != "",
		m.Demographic.Gender != "",
	} {
		if enabled {
			count++
		}
	}
	return count
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
