package memory

import (
	"context"
	"sync"

	"github.com/footyclub/records/internal/domain/outcome"
)

type OutcomeRepository struct {
	mu    sync.RWMutex
	items []outcome.Outcome
}

func NewOutcomeRepository(outcomes []outcome.Outcome) *OutcomeRepository {
	items := make([]outcome.Outcome, len(outcomes))
	copy(items, outcomes)
	return &OutcomeRepository{items: items}
}

func (r *OutcomeRepository) ListByGameDay(_ context.Context, gameDayID int64) ([]outcome.Outcome, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]outcome.Outcome, 0)
	for _, o := range r.items {
		if o.GameDayID == gameDayID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *OutcomeRepository) ListByPlayer(_ context.Context, playerID string) ([]outcome.Outcome, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]outcome.Outcome, 0)
	for _, o := range r.items {
		if o.PlayerID == playerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *OutcomeRepository) ListAll(_ context.Context) ([]outcome.Outcome, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]outcome.Outcome, len(r.items))
	copy(out, r.items)
	return out, nil
}
