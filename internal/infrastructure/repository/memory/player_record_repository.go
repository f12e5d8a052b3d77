package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/footyclub/records/internal/domain/playerrecord"
)

type recordKey struct {
	playerID string
	year     int
}

type PlayerRecordRepository struct {
	mu    sync.RWMutex
	items map[recordKey]playerrecord.Record
}

func NewPlayerRecordRepository() *PlayerRecordRepository {
	return &PlayerRecordRepository{items: make(map[recordKey]playerrecord.Record)}
}

func (r *PlayerRecordRepository) Get(_ context.Context, playerID string, year int) (playerrecord.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.items[recordKey{playerID: playerID, year: year}]
	if !ok {
		return playerrecord.Record{}, false, nil
	}
	return rec, true, nil
}

func (r *PlayerRecordRepository) ListByYear(_ context.Context, year int) ([]playerrecord.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]playerrecord.Record, 0)
	for key, rec := range r.items {
		if key.year == year {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out, nil
}

func (r *PlayerRecordRepository) ListYears(_ context.Context, includeAllTime bool) ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[int]struct{})
	years := make([]int, 0)
	for key := range r.items {
		if key.year == playerrecord.AllTimeYear && !includeAllTime {
			continue
		}
		if _, ok := seen[key.year]; ok {
			continue
		}
		seen[key.year] = struct{}{}
		years = append(years, key.year)
	}
	sort.Ints(years)
	return years, nil
}

func (r *PlayerRecordRepository) ReplaceByYear(_ context.Context, year int, records []playerrecord.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key := range r.items {
		if key.year == year {
			delete(r.items, key)
		}
	}
	for _, rec := range records {
		rec.Year = year
		r.items[recordKey{playerID: rec.PlayerID, year: year}] = rec
	}
	return nil
}

func (r *PlayerRecordRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make(map[recordKey]playerrecord.Record)
	return nil
}
