package domain

// SegmentInfo describes a fixed behavioral segment
type SegmentInfo struct {
	ID          SegmentID `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Icon        string    `json:"icon" yaml:"icon"`
	Description string    `json:"description" yaml:"description"`
}

var catalog = []SegmentInfo{
	{ID: SegmentIDExplorer, Name: "Explorer", Icon: "🧭", Description: "New users discovering missions, low XP and no wallet yet"},
	{ID: SegmentIDBuilder, Name: "Builder", Icon: "🏗️", Description: "Committed contributors with long streaks and verified proofs"},
	{ID: SegmentIDGrinder, Name: "Grinder", Icon: "⚙️", Description: "High-frequency users completing missions for rewards"},
	{ID: SegmentIDLurker, Name: "Lurker", Icon: "👀", Description: "Dormant or passive users who rarely complete missions"},
	{ID: SegmentIDDegen, Name: "Degen", Icon: "🎲", Description: "Crypto-native users chasing airdrops, trading and referrals"},
}

// Segments returns the fixed segment catalog in display order
func Segments() []SegmentInfo {
	out := make([]SegmentInfo, len(catalog))
	copy(out, catalog)
	return out
}

// SegmentIDs returns the fixed segment identities in display order
func SegmentIDs() []SegmentID {
	ids := make([]SegmentID, len(catalog))
	for i, s := range catalog {
		ids[i] = s.ID
	}
	return ids
}

// LookupSegment returns the catalog entry for id
func LookupSegment(id SegmentID) (SegmentInfo, bool) {
	for _, s := range catalog {
		if s.ID == id {
			return s, true
		}
	}
	return SegmentInfo{}, false
}

// UserSegment is one segment of an estimate
type UserSegment struct {
	SegmentInfo    `yaml:",inline"`
	EstimatedCount int      `json:"estimated_count" yaml:"estimated_count"`
	Percentage     float64  `json:"percentage" yaml:"percentage"`
	Conditions     []string `json:"conditions" yaml:"conditions"`
}

// ChannelBreakdown is the estimated reach per delivery surface
type ChannelBreakdown struct {
	Discord  int `json:"discord" yaml:"discord"`
	Telegram int `json:"telegram" yaml:"telegram"`
	Line     int `json:"line" yaml:"line"`
	Groups   int `json:"groups" yaml:"groups"`
}

// Factor is one multiplier applied to the base population
type Factor struct {
	Label      string  `json:"label" yaml:"label"`
	Multiplier float64 `json:"multiplier" yaml:"multiplier"`
}

// AudienceEstimate is the forward-looking reach of a campaign.
// It is recomputed from scratch for every FilterModel and never stored.
type AudienceEstimate struct {
	AudienceType  AudienceType     `json:"audience_type" yaml:"audience_type"`
	TotalReach    int              `json:"total_reach" yaml:"total_reach"`
	ActiveFilters int              `json:"active_filters" yaml:"active_filters"`
	Segments      []UserSegment    `json:"segments" yaml:"segments"`
	Channels      ChannelBreakdown `json:"channels" yaml:"channels"`
	Factors       []Factor         `json:"factors,omitempty" yaml:"factors,omitempty"`
}

// Segment returns the segment with id if it survived zero-count filtering
func (e AudienceEstimate) Segment(id SegmentID) (UserSegment, bool) {
	for _, s := range e.Segments {
		if s.ID == id {
			return s, true
		}
	}
	return UserSegment{}, false
}
