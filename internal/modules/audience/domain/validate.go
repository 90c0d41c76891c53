package domain

import (
	"github.com/reshetovitsme/audience-reach/internal/shared/errors"
	"github.com/samber/oops"
)

// Validate checks the enumerated fields of the model.
// Numeric ranges are not checked; the estimator tolerates any value.
func (m FilterModel) Validate() error {
	if !m.AudienceType.IsValid() {
		return oops.With("audience_type", m.AudienceType).Wrap(errors.ErrInvalidFilter)
	}
	if !m.Delivery.Channel.IsValid() {
		return oops.With("channel", m.Delivery.Channel).Wrap(errors.ErrInvalidFilter)
	}
	if !m.Delivery.Scope.IsValid() {
		return oops.With("scope", m.Delivery.Scope).Wrap(errors.ErrInvalidFilter)
	}
	if !m.Delivery.Schedule.IsValid() {
		return oops.With("schedule", m.Delivery.Schedule).Wrap(errors.ErrInvalidFilter)
	}
	if m.Delivery.Schedule == ScheduleScheduled && m.Delivery.ScheduledDate == nil {
		return oops.With("schedule", m.Delivery.Schedule, "context", "scheduled delivery needs a date").Wrap(errors.ErrInvalidFilter)
	}
	if m.Behavior.LastActive.Enabled && !m.Behavior.LastActive.Value.IsValid() {
		return oops.With("last_active", m.Behavior.LastActive.Value).Wrap(errors.ErrInvalidFilter)
	}
	return nil
}
