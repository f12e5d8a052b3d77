package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/footyclub/records/internal/domain/gameday"
)

type GameDayRepository struct {
	mu     sync.RWMutex
	items  map[int64]gameday.GameDay
	orders []int64
}

func NewGameDayRepository(days []gameday.GameDay) *GameDayRepository {
	items := make(map[int64]gameday.GameDay, len(days))
	orders := make([]int64, 0, len(days))

	for _, d := range days {
		items[d.ID] = d
		orders = append(orders, d.ID)
	}

	return &GameDayRepository{
		items:  items,
		orders: orders,
	}
}

func (r *GameDayRepository) Get(_ context.Context, id int64) (gameday.GameDay, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.items[id]
	if !ok {
		return gameday.GameDay{}, false, nil
	}
	return d, true, nil
}

func (r *GameDayRepository) List(_ context.Context) ([]gameday.GameDay, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]gameday.GameDay, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *GameDayRepository) ListYears(_ context.Context) ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[int]struct{})
	years := make([]int, 0)
	for _, d := range r.items {
		if _, ok := seen[d.Year]; ok {
			continue
		}
		seen[d.Year] = struct{}{}
		years = append(years, d.Year)
	}
	sort.Ints(years)
	return years, nil
}
