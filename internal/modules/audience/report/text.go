// Package report renders estimates and filter models as plain text for chat and terminal output
package report

import (
	"fmt"
	"strings"

	"github.com/reshetovitsme/audience-reach/internal/modules/audience/domain"
	"github.com/samber/lo"
)

// Estimate renders an estimate as plain text
func Estimate(est domain.AudienceEstimate) string {
	var text strings.Builder

	fmt.Fprintf(&text, "📊 Estimated reach: %d users\n", est.TotalReach)
	if est.AudienceType == domain.AudienceTypeGlobal {
		text.WriteString("🌍 Global audience, filters ignored\n")
	} else {
		fmt.Fprintf(&text, "🎯 Active filters: %d\n", est.ActiveFilters)
	}

	if len(est.Segments) == 0 {
		text.WriteString("\nNo segment is reachable with these filters.\n")
	} else {
		text.WriteString("\nSegments:\n")
		for _, s := range est.Segments {
			fmt.Fprintf(&text, "%s %s: %d (%.1f%%)\n", s.Icon, s.Name, s.EstimatedCount, s.Percentage)
			for _, c := range s.Conditions {
				fmt.Fprintf(&text, "   • %s\n", c)
			}
		}
	}

	c := est.Channels
	text.WriteString("\nChannels:\n")
	fmt.Fprintf(&text, "Discord: %d\nTelegram: %d\nLINE: %d\nGroups: %d\n", c.Discord, c.Telegram, c.Line, c.Groups)

	if len(est.Factors) > 0 {
		text.WriteString("\nReach factors:\n")
		for _, f := range est.Factors {
			fmt.Fprintf(&text, "× %.2f %s\n", f.Multiplier, f.Label)
		}
	}

	return strings.TrimRight(text.String(), "\n")
}

// Model renders the enabled parts of a filter model
func Model(m domain.FilterModel) string {
	var text strings.Builder

	fmt.Fprintf(&text, "📋 Audience: %s\n", m.AudienceType)
	d := m.Delivery
	fmt.Fprintf(&text, "📬 Delivery: %s, %s, %s", d.Channel, d.Scope, d.Schedule)
	if d.ScheduledDate != nil {
		fmt.Fprintf(&text, " at %s", d.ScheduledDate.Format("2006-01-02 15:04 MST"))
	}
	text.WriteString("\n")

	lines := filterLines(m)
	if len(lines) == 0 {
		text.WriteString("No filters enabled")
		return text.String()
	}
	text.WriteString("Filters:\n")
	text.WriteString(strings.Join(lo.Map(lines, func(l string, _ int) string { return "• " + l }), "\n"))
	return text.String()
}

func filterLines(m domain.FilterModel) []string {
	b := m.Behavior
	var lines []string
	add := func(enabled bool, format string, args ...any) {
		if enabled {
			lines = append(lines, fmt.Sprintf(format, args...))
		}
	}

	add(b.XPLevel.Enabled, "XP %d-%d", b.XPLevel.Min, b.XPLevel.Max)
	add(b.MissionStreak.Enabled, "Mission streak ≥ %d", b.MissionStreak.Value)
	add(b.LastActive.Enabled, "Last active: %s", b.LastActive.Value)
	add(b.FailedMissions.Enabled, "Failed missions ≤ %d", b.FailedMissions.Value)
	add(b.TrustScore.Enabled, "Trust score ≥ %d", b.TrustScore.Value)
	add(b.ConnectedWallet.Enabled, "Wallet connected: %s", yesNo(b.ConnectedWallet.Value))
	add(b.JoinedViaPartner.Enabled, "Joined via partner: %s", b.JoinedViaPartner.Value)
	add(b.ReferredUsers.Enabled, "Referred users ≥ %d", b.ReferredUsers.Value)
	add(b.AgentHealth.Enabled, "Agent health ≥ %d", b.AgentHealth.Value)
	add(b.MemoryProofSubmitted.Enabled, "Memory proof submitted: %s", yesNo(b.MemoryProofSubmitted.Value))
	add(b.TaggedInterests.Enabled, "Interests: %s", strings.Join(b.TaggedInterests.Values, ", "))

	demo := m.Demographic
	add(len(demo.Location) > 0, "Location: %s", strings.Join(demo.Location, ", "))
	add(len(demo.Language) > 0, "Language: %s", strings.Join(demo.Language, ", "))
	add(demo.AgeRange != "", "Age: %s", demo.AgeRange)
	add(demo.Gender != "", "Gender: %s", demo.Gender)

	return lines
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
