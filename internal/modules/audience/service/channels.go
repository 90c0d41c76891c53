package service

import (
	"math"

	"github.com/reshetovitsme/audience-reach/internal/modules/audience/domain"
)

// ChannelDistributor splits a reach across delivery surfaces
type ChannelDistributor struct {
	shares    map[domain.Channel]float64
	groupSize int
}

// NewChannelDistributor creates a distributor with fixed shares and an average group size
func NewChannelDistributor(shares map[domain.Channel]float64, groupSize int) *ChannelDistributor {
	return &ChannelDistributor{shares: shares, groupSize: groupSize}
}

// Distribute reports every channel against the same filtered total.
// In-app delivery reaches the whole total.
func (c *ChannelDistributor) Distribute(totalReach int, selected domain.Channel) domain.ChannelBreakdown {
	total := max(totalReach, 0)
	return domain.ChannelBreakdown{
		Discord:  c.reach(total, domain.ChannelDiscord),
		Telegram: c.reach(total, domain.ChannelTelegram),
		Line:     c.reach(total, domain.ChannelLine),
		Groups:   c.Groups(c.SelectedReach(total, selected)),
	}
}

// SelectedReach is the part of totalReach deliverable through channel
func (c *ChannelDistributor) SelectedReach(totalReach int, channel domain.Channel) int {
	if share, ok := c.shares[channel]; ok {
		return c.scale(totalReach, share)
	}
	return totalReach
}

// Groups is the number of average-sized groups needed to hold reach
func (c *ChannelDistributor) Groups(reach int) int {
	if reach <= 0 || c.groupSize <= 0 {
		return 0
	}
	return int(math.Ceil(float64(reach) / float64(c.groupSize)))
}

func (c *ChannelDistributor) reach(total int, channel domain.Channel) int {
	return c.scale(total, c.shares[channel])
}

func (c *ChannelDistributor) scale(total int, share float64) int {
	return int(math.Round(float64(total) * share))
}
