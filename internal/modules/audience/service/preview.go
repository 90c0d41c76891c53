package service

import (
	"sync"

	"github.com/reshetovitsme/audience-reach/internal/modules/audience/domain"
)

// Preview keeps an editable FilterModel and the estimate of its latest edit.
// Concurrent edits are ordered by generation: an estimate computed for a stale
// model is never published over a newer one.
type Preview struct {
	estimator *Estimator

	mu        sync.Mutex
	model     domain.FilterModel
	edits     uint64
	published uint64
	latest    domain.AudienceEstimate
}

// NewPreview starts a preview from model
func NewPreview(estimator *Estimator, model domain.FilterModel) *Preview {
	return &Preview{
		estimator: estimator,
		model:     model.Clone(),
		latest:    estimator.Estimate(model),
	}
}

// Update applies edit to the model and returns the estimate for the edited model.
// If edit fails the model is unchanged and the current estimate is returned.
func (p *Preview) Update(edit func(m *domain.FilterModel) error) (domain.AudienceEstimate, error) {
	p.mu.Lock()
	next := p.model.Clone()
	if err := edit(&next); err != nil {
		latest := p.latest
		p.mu.Unlock()
		return latest, err
	}
	p.model = next
	p.edits++
	gen := p.edits
	snapshot := next.Clone()
	p.mu.Unlock()

	estimate := p.estimator.Estimate(snapshot)

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen > p.published {
		p.published = gen
		p.latest = estimate
	}
	return estimate, nil
}

// Reset replaces the model with a fresh one
func (p *Preview) Reset() domain.AudienceEstimate {
	estimate, _ := p.Update(func(m *domain.FilterModel) error {
		*m = domain.NewFilterModel()
		return nil
	})
	return estimate
}

// Model returns a copy of the current model
func (p *Preview) Model() domain.FilterModel {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.model.Clone()
}

// Latest returns the estimate of the newest model computed so far
func (p *Preview) Latest() domain.AudienceEstimate {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.latest
}
