package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/reshetovitsme/audience-reach/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// AssignmentKeys lists the keys accepted by ApplyAssignment
var AssignmentKeys = []string{
	"audience", "channel", "scope", "schedule", "at",
	"xp", "streak", "active", "failed", "trust", "wallet", "partner",
	"referrals", "health", "proof", "interests",
	"location", "language", "age", "gender",
}

// ApplyAssignments applies "key=value" edits in order.
// The model is left untouched when any edit fails.
func (m *FilterModel) ApplyAssignments(args []string) error {
	next := m.Clone()
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return oops.With("argument", arg, "context", "expected key=value").Wrap(errors.ErrInvalidFilter)
		}
		if err := next.ApplyAssignment(strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return err
		}
	}
	*m = next
	return nil
}

// ApplyAssignment sets a single filter from its textual form and enables it.
// "off=<key>" disables a filter instead.
func (m *FilterModel) ApplyAssignment(key, value string) error {
	key = strings.ToLower(key)
	b := &m.Behavior
	d := &m.Demographic

	switch key {
	case "off":
		return m.disable(strings.ToLower(value))
	case "audience":
		v, err := ParseAudienceType(value)
		if err != nil {
			return invalid(key, value, err)
		}
		m.AudienceType = v
	case "channel":
		v, err := ParseChannel(value)
		if err != nil {
			return invalid(key, value, err)
		}
		m.Delivery.Channel = v
	case "scope":
		v, err := ParseScope(value)
		if err != nil {
			return invalid(key, value, err)
		}
		m.Delivery.Scope = v
	case "schedule":
		v, err := ParseSchedule(value)
		if err != nil {
			return invalid(key, value, err)
		}
		m.Delivery.Schedule = v
	case "at":
		t, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return invalid(key, value, err)
		}
		m.Delivery.Schedule = ScheduleScheduled
		m.Delivery.ScheduledDate = &t
	case "xp":
		lower, upper, ok := strings.Cut(value, "-")
		if !ok {
			return invalid(key, value, oops.Errorf("expected min-max"))
		}
		minXP, err := strconv.Atoi(strings.TrimSpace(lower))
		if err != nil {
			return invalid(key, value, err)
		}
		maxXP, err := strconv.Atoi(strings.TrimSpace(upper))
		if err != nil {
			return invalid(key, value, err)
		}
		b.XPLevel = RangeFilter{Enabled: true, Min: minXP, Max: maxXP}
	case "streak":
		return setInt(&b.MissionStreak, key, value)
	case "failed":
		return setInt(&b.FailedMissions, key, value)
	case "trust":
		return setInt(&b.TrustScore, key, value)
	case "referrals":
		return setInt(&b.ReferredUsers, key, value)
	case "health":
		return setInt(&b.AgentHealth, key, value)
	case "active":
		v, err := ParseLastActive(value)
		if err != nil {
			return invalid(key, value, err)
		}
		b.LastActive = LastActiveFilter{Enabled: true, Value: v}
	case "wallet":
		return setBool(&b.ConnectedWallet, key, value)
	case "proof":
		return setBool(&b.MemoryProofSubmitted, key, value)
	case "partner":
		b.JoinedViaPartner = StringFilter{Enabled: value != "", Value: value}
	case "interests":
		values := splitList(value)
		b.TaggedInterests = SetFilter{Enabled: len(values) > 0, Values: values}
	case "location":
		d.Location = lo.Uniq(lo.Map(splitList(value), func(s string, _ int) string { return strings.ToUpper(s) }))
	case "language":
		d.Language = lo.Uniq(lo.Map(splitList(value), func(s string, _ int) string { return strings.ToLower(s) }))
	case "age":
		d.AgeRange = value
	case "gender":
		d.Gender = value
	default:
		return oops.With("key", key).Wrap(errors.ErrUnknownFilterKey)
	}
	return nil
}

func (m *FilterModel) disable(key string) error {
	b := &m.Behavior
	d := &m.Demographic

	switch key {
	case "xp":
		b.XPLevel.Enabled = false
	case "streak":
		b.MissionStreak.Enabled = false
	case "active":
		b.LastActive.Enabled = false
	case "failed":
		b.FailedMissions.Enabled = false
	case "trust":
		b.TrustScore.Enabled = false
	case "wallet":
		b.ConnectedWallet.Enabled = false
	case "partner":
		b.JoinedViaPartner.Enabled = false
	case "referrals":
		b.ReferredUsers.Enabled = false
	case "health":
		b.AgentHealth.Enabled = false
	case "proof":
		b.MemoryProofSubmitted.Enabled = false
	case "interests":
		b.TaggedInterests.Enabled = false
	case "location":
		d.Location = nil
	case "language":
		d.Language = nil
	case "age":
		d.AgeRange = ""
	case "gender":
		d.Gender = ""
	case "at":
		m.Delivery.Schedule = ScheduleImmediate
		m.Delivery.ScheduledDate = nil
	default:
		return oops.With("key", key).Wrap(errors.ErrUnknownFilterKey)
	}
	return nil
}

func setInt(f *IntFilter, key, value string) error {
	v, err := strconv.Atoi(value)
	if err != nil {
		return invalid(key, value, err)
	}
	*f = IntFilter{Enabled: true, Value: v}
	return nil
}

func setBool(f *BoolFilter, key, value string) error {
	switch strings.ToLower(value) {
	case "yes", "y", "true", "1", "on":
		*f = BoolFilter{Enabled: true, Value: true}
	case "no", "n", "false", "0", "off":
		*f = BoolFilter{Enabled: true, Value: false}
	default:
		return invalid(key, value, oops.Errorf("expected yes or no"))
	}
	return nil
}

func splitList(value string) []string {
	parts := lo.FilterMap(strings.Split(value, ","), func(part string, _ int) (string, bool) {
		part = strings.TrimSpace(part)
		return part, part != ""
	})
	return lo.Uniq(parts)
}

func invalid(key, value string, cause error) error {
	return oops.With("key", key, "value", value, "cause", cause.Error()).Wrap(errors.ErrInvalidFilter)
}
