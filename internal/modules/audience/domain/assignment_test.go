package domain

import (
	"errors"
	"slices"
	"testing"
	"time"

	sharedErrors "github.com/reshetovitsme/audience-reach/internal/shared/errors"
)

func TestApplyAssignmentsDeduplicatesCodes(t *testing.T) {
	m := NewFilterModel()
	if err := m.ApplyAssignments([]string{"location=us,US, Us", "language=EN,en"}); err != nil {
		t.Fatalf("ApplyAssignments: %v", err)
	}
	if !slices.Equal(m.Demographic.Location, []string{"US"}) {
		t.Errorf("expected [US], got %v", m.Demographic.Location)
	}
	if !slices.Equal(m.Demographic.Language, []string{"en"}) {
		t.Errorf("expected [en], got %v", m.Demographic.Language)
	}
}

func TestApplyAssignments(t *testing.T) {
	m := NewFilterModel()
	err := m.ApplyAssignments([]string{
		"xp=50-100",
		"trust=70",
		"wallet=yes",
		"active=3DAYS",
		"interests=trading, defi,trading",
		"location=us,de",
		"language=en",
		"channel=Telegram",
		"streak=12",
		"proof=no",
		"partner=acme",
		"age=25-34",
	})
	if err != nil {
		t.Fatalf("ApplyAssignments: %v", err)
	}

	b := m.Behavior
	if !b.XPLevel.Enabled || b.XPLevel.Min != 50 || b.XPLevel.Max != 100 {
		t.Errorf("unexpected xp filter %+v", b.XPLevel)
	}
	if !b.TrustScore.Enabled || b.TrustScore.Value != 70 {
		t.Errorf("unexpected trust filter %+v", b.TrustScore)
	}
	if !b.ConnectedWallet.Enabled || !b.ConnectedWallet.Value {
		t.Errorf("unexpected wallet filter %+v", b.ConnectedWallet)
	}
	if b.LastActive.Value != LastActive3days {
		t.Errorf("expected 3days, got %s", b.LastActive.Value)
	}
	if !slices.Equal(b.TaggedInterests.Values, []string{"trading", "defi"}) {
		t.Errorf("unexpected interests %v", b.TaggedInterests.Values)
	}
	if !slices.Equal(m.Demographic.Location, []string{"US", "DE"}) {
		t.Errorf("unexpected location %v", m.Demographic.Location)
	}
	if m.Delivery.Channel != ChannelTelegram {
		t.Errorf("expected telegram, got %s", m.Delivery.Channel)
	}
	if !b.MemoryProofSubmitted.Enabled || b.MemoryProofSubmitted.Value {
		t.Errorf("unexpected proof filter %+v", b.MemoryProofSubmitted)
	}
	if m.Demographic.AgeRange != "25-34" {
		t.Errorf("unexpected age range %q", m.Demographic.AgeRange)
	}
	if got := m.ActiveFilters(); got != 11 {
		t.Errorf("expected 11 active filters, got %d", got)
	}
}

func TestApplyAssignmentsIsAtomic(t *testing.T) {
	m := NewFilterModel()
	err := m.ApplyAssignments([]string{"trust=70", "xp=abc"})
	if !errors.Is(err, sharedErrors.ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
	if m.Behavior.TrustScore.Enabled {
		t.Error("partial edit leaked into the model")
	}
}

func TestApplyAssignmentErrors(t *testing.T) {
	tests := []struct {
		arg  string
		want error
	}{
		{"colour=blue", sharedErrors.ErrUnknownFilterKey},
		{"off=colour", sharedErrors.ErrUnknownFilterKey},
		{"xp=10", sharedErrors.ErrInvalidFilter},
		{"xp=10-x", sharedErrors.ErrInvalidFilter},
		{"trust=high", sharedErrors.ErrInvalidFilter},
		{"wallet=maybe", sharedErrors.ErrInvalidFilter},
		{"active=yesterday", sharedErrors.ErrInvalidFilter},
		{"channel=fax", sharedErrors.ErrInvalidFilter},
		{"at=tomorrow", sharedErrors.ErrInvalidFilter},
		{"justakey", sharedErrors.ErrInvalidFilter},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			m := NewFilterModel()
			if err := m.ApplyAssignments([]string{tt.arg}); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestApplyAssignmentOff(t *testing.T) {
	m := NewFilterModel()
	if err := m.ApplyAssignments([]string{"xp=0-30", "location=US", "at=2026-11-01T10:00:00Z"}); err != nil {
		t.Fatalf("ApplyAssignments: %v", err)
	}
	if m.Delivery.Schedule != ScheduleScheduled || m.Delivery.ScheduledDate == nil {
		t.Fatalf("expected scheduled delivery, got %+v", m.Delivery)
	}

	if err := m.ApplyAssignments([]string{"off=xp", "off=location", "off=at"}); err != nil {
		t.Fatalf("ApplyAssignments: %v", err)
	}
	if m.Behavior.XPLevel.Enabled {
		t.Error("expected xp disabled")
	}
	if m.Demographic.Location != nil {
		t.Errorf("expected location cleared, got %v", m.Demographic.Location)
	}
	if m.Delivery.Schedule != ScheduleImmediate || m.Delivery.ScheduledDate != nil {
		t.Errorf("expected immediate delivery, got %+v", m.Delivery)
	}
}

func TestValidate(t *testing.T) {
	when := time.Date(2026, 11, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		mutate func(m *FilterModel)
		ok     bool
	}{
		{"defaults", func(m *FilterModel) {}, true},
		{"bad audience", func(m *FilterModel) { m.AudienceType = "everyone" }, false},
		{"empty channel", func(m *FilterModel) { m.Delivery.Channel = "" }, false},
		{"bad scope", func(m *FilterModel) { m.Delivery.Scope = "planet" }, false},
		{"scheduled without date", func(m *FilterModel) { m.Delivery.Schedule = ScheduleScheduled }, false},
		{"scheduled with date", func(m *FilterModel) {
			m.Delivery.Schedule = ScheduleScheduled
			m.Delivery.ScheduledDate = &when
		}, true},
		{"bad bucket enabled", func(m *FilterModel) {
			m.Behavior.LastActive = LastActiveFilter{Enabled: true, Value: "yesterday"}
		}, false},
		{"bad bucket disabled", func(m *FilterModel) {
			m.Behavior.LastActive = LastActiveFilter{Value: "yesterday"}
		}, true},
		{"out of range numbers pass", func(m *FilterModel) {
			m.Behavior.XPLevel = RangeFilter{Enabled: true, Min: 90, Max: 10}
			m.Behavior.TrustScore = IntFilter{Enabled: true, Value: -4}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewFilterModel()
			tt.mutate(&m)
			err := m.Validate()
			if tt.ok && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.ok && !errors.Is(err, sharedErrors.ErrInvalidFilter) {
				t.Errorf("expected ErrInvalidFilter, got %v", err)
			}
		})
	}
}

func TestSegmentCatalog(t *testing.T) {
	ids := SegmentIDs()
	if len(ids) != 5 {
		t.Fatalf("expected 5 segments, got %d", len(ids))
	}
	for _, id := range ids {
		if !id.IsValid() {
			t.Errorf("catalog id %q is not a valid SegmentID", id)
		}
		info, ok := LookupSegment(id)
		if !ok || info.Name == "" || info.Description == "" {
			t.Errorf("incomplete catalog entry for %s: %+v", id, info)
		}
	}
	if _, ok := LookupSegment("whale"); ok {
		t.Error("unexpected catalog entry for whale")
	}
}
