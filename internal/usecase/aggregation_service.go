package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc"
	"golang.org/x/sync/singleflight"

	"github.com/footyclub/records/internal/domain/gameday"
	"github.com/footyclub/records/internal/domain/outcome"
	"github.com/footyclub/records/internal/domain/playerrecord"
	"github.com/footyclub/records/internal/platform/logging"
	"github.com/footyclub/records/internal/platform/metrics"
)

const defaultRecomputeWorkers = 4

// AggregationService owns the derived record store. It re-derives records
// from the outcome and game day sources; it never patches metrics
// incrementally, so a scoped recompute always matches what a full rebuild
// would produce for the same scopes.
//
// Callers must not run RecomputeAll concurrently with RecomputeForGameDay
// against the same store. Duplicate triggers of the same operation are
// collapsed by a single-flight guard.
type AggregationService struct {
	outcomeRepo outcome.Repository
	gamedayRepo gameday.Repository
	recordRepo  playerrecord.Repository
	thresholds  Thresholds
	workers     int
	metrics     *metrics.Service
	logger      *logging.Logger

	flight   singleflight.Group
	progress progressTracker
}

func NewAggregationService(
	outcomeRepo outcome.Repository,
	gamedayRepo gameday.Repository,
	recordRepo playerrecord.Repository,
	thresholds Thresholds,
	workers int,
	metricsService *metrics.Service,
	logger *logging.Logger,
) *AggregationService {
	if workers < 1 {
		workers = defaultRecomputeWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &AggregationService{
		outcomeRepo: outcomeRepo,
		gamedayRepo: gamedayRepo,
		recordRepo:  recordRepo,
		thresholds:  thresholds,
		workers:     workers,
		metrics:     metricsService,
		logger:      logger,
	}
}

// Progress returns the current rebuild progress. Safe to call from any
// goroutine while a run is in flight.
func (s *AggregationService) Progress() Progress {
	return s.progress.snapshot()
}

// RecomputeAll deletes every record and re-derives the full set from every
// outcome and game day. Partial writes from a failed run are left in place;
// retrying the operation is the recovery mechanism.
func (s *AggregationService) RecomputeAll(ctx context.Context) error {
	_, err, _ := s.flight.Do("recompute-all", func() (any, error) {
		return nil, s.recomputeAll(ctx)
	})
	return err
}

func (s *AggregationService) recomputeAll(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AggregationService.RecomputeAll")
	defer span.End()

	runID := uuid.NewString()
	logger := s.logger.With("run_id", runID, "operation", "recompute_all")
	logger.InfoContext(ctx, "full rebuild starting")

	start := time.Now()
	s.progress.start()

	err := s.rebuildAll(ctx, logger)
	s.progress.finish(err)

	elapsed := time.Since(start)
	if err != nil {
		s.metrics.ObserveRecompute("recompute_all", "failed", elapsed.Seconds())
		logger.ErrorContext(ctx, "full rebuild failed", "error", err, "elapsed", elapsed)
		return err
	}

	s.metrics.ObserveRecompute("recompute_all", "completed", elapsed.Seconds())
	logger.InfoContext(ctx, "full rebuild completed", "elapsed", elapsed)
	return nil
}

func (s *AggregationService) rebuildAll(ctx context.Context, logger *logging.Logger) error {
	if err := s.recordRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete player records: %w", err)
	}

	days, err := s.gamedayRepo.List(ctx)
	if err != nil {
		return upstreamReadError(err, "list game days")
	}
	dayByID := make(map[int64]gameday.GameDay, len(days))
	for _, d := range days {
		dayByID[d.ID] = d
	}

	outcomes, err := s.outcomeRepo.ListAll(ctx)
	if err != nil {
		return upstreamReadError(err, "list outcomes")
	}

	// Partition outcomes into (player, year) scopes; every outcome also
	// lands in the all-time scope.
	byScope := make(map[int]map[string][]outcome.Outcome)
	for _, o := range outcomes {
		gd, ok := dayByID[o.GameDayID]
		if !ok {
			return upstreamInconsistency("outcome references unknown game day %d", o.GameDayID)
		}
		addToScope(byScope, gd.Year, o)
		addToScope(byScope, playerrecord.AllTimeYear, o)
	}

	total := uint64(0)
	years := make([]int, 0, len(byScope))
	for year, players := range byScope {
		years = append(years, year)
		total += uint64(len(players))
	}
	sort.Ints(years)
	s.progress.setTotal(total)
	logger.InfoContext(ctx, "rebuild partitioned", "years", len(years), "scopes", total)

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	// One task per year: a year's record set is written by exactly one
	// worker, so no two workers touch overlapping (player, year) keys.
	errs := make(chan error, len(years))
	var workers sync.WaitGroup
	for _, year := range years {
		year := year
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			if err := s.rebuildScope(ctx, year, byScope[year], dayByID); err != nil {
				errs <- fmt.Errorf("rebuild year %d: %w", year, err)
			}
		}); err != nil {
			workers.Done()
			return fmt.Errorf("submit year %d to worker pool: %w", year, err)
		}
	}
	workers.Wait()
	close(errs)

	for err := range errs {
		return err
	}
	return nil
}

func (s *AggregationService) rebuildScope(ctx context.Context, year int, byPlayer map[string][]outcome.Outcome, dayByID map[int64]gameday.GameDay) error {
	players := make([]string, 0, len(byPlayer))
	for p := range byPlayer {
		players = append(players, p)
	}
	sort.Strings(players)

	records := make([]playerrecord.Record, 0, len(players))
	for _, p := range players {
		// Cancellation is honoured between scopes: already-written years
		// stay valid, merely stale.
		if err := ctx.Err(); err != nil {
			return err
		}
		records = append(records, buildRecord(p, year, byPlayer[p], dayByID, s.thresholds))
		s.progress.add(1)
	}

	applyRanks(records)
	if err := s.recordRepo.ReplaceByYear(ctx, year, records); err != nil {
		return fmt.Errorf("replace records: %w", err)
	}
	return nil
}

// RecomputeForGameDay re-derives the records of every player with an outcome
// on the given game day, in the two scopes the day touches: its year and
// all-time. Each affected record is rebuilt from scratch from the player's
// full outcome set in the scope.
func (s *AggregationService) RecomputeForGameDay(ctx context.Context, gameDayID int64) error {
	key := fmt.Sprintf("recompute-gameday-%d", gameDayID)
	_, err, _ := s.flight.Do(key, func() (any, error) {
		return nil, s.recomputeForGameDay(ctx, gameDayID)
	})
	return err
}

func (s *AggregationService) recomputeForGameDay(ctx context.Context, gameDayID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AggregationService.RecomputeForGameDay")
	defer span.End()

	runID := uuid.NewString()
	logger := s.logger.With("run_id", runID, "operation", "recompute_game_day", "game_day_id", gameDayID)

	gd, exists, err := s.gamedayRepo.Get(ctx, gameDayID)
	if err != nil {
		return upstreamReadError(err, "get game day")
	}
	if !exists {
		return fmt.Errorf("%w: game day %d", ErrNotFound, gameDayID)
	}

	start := time.Now()
	s.progress.start()

	err = s.recomputeDay(ctx, gd, logger)
	s.progress.finish(err)

	elapsed := time.Since(start)
	if err != nil {
		s.metrics.ObserveRecompute("recompute_game_day", "failed", elapsed.Seconds())
		logger.ErrorContext(ctx, "game day recompute failed", "error", err, "elapsed", elapsed)
		return err
	}

	s.metrics.ObserveRecompute("recompute_game_day", "completed", elapsed.Seconds())
	logger.InfoContext(ctx, "game day recompute completed", "elapsed", elapsed)
	return nil
}

func (s *AggregationService) recomputeDay(ctx context.Context, gd gameday.GameDay, logger *logging.Logger) error {
	dayOutcomes, err := s.outcomeRepo.ListByGameDay(ctx, gd.ID)
	if err != nil {
		return upstreamReadError(err, fmt.Sprintf("list outcomes for game day %d", gd.ID))
	}
	if len(dayOutcomes) == 0 {
		logger.InfoContext(ctx, "game day has no outcomes, nothing to recompute")
		return nil
	}

	seen := make(map[string]struct{}, len(dayOutcomes))
	players := make([]string, 0, len(dayOutcomes))
	for _, o := range dayOutcomes {
		if _, ok := seen[o.PlayerID]; ok {
			continue
		}
		seen[o.PlayerID] = struct{}{}
		players = append(players, o.PlayerID)
	}
	sort.Strings(players)

	days, err := s.gamedayRepo.List(ctx)
	if err != nil {
		return upstreamReadError(err, "list game days")
	}
	dayByID := make(map[int64]gameday.GameDay, len(days))
	for _, d := range days {
		dayByID[d.ID] = d
	}

	scopes := []int{gd.Year, playerrecord.AllTimeYear}
	s.progress.setTotal(uint64(len(players) * len(scopes)))

	// The two scopes are independent record sets; re-derive them
	// concurrently.
	scopeErrs := make([]error, len(scopes))
	var wg conc.WaitGroup
	for i, year := range scopes {
		i, year := i, year
		wg.Go(func() {
			scopeErrs[i] = s.recomputeScopeForPlayers(ctx, year, players, dayByID)
		})
	}
	wg.Wait()

	return errors.Join(scopeErrs...)
}

func (s *AggregationService) recomputeScopeForPlayers(ctx context.Context, year int, players []string, dayByID map[int64]gameday.GameDay) error {
	existing, err := s.recordRepo.ListByYear(ctx, year)
	if err != nil {
		return fmt.Errorf("list records for year %d: %w", year, err)
	}
	byPlayer := make(map[string]playerrecord.Record, len(existing))
	for _, rec := range existing {
		byPlayer[rec.PlayerID] = rec
	}

	for _, p := range players {
		if err := ctx.Err(); err != nil {
			return err
		}

		outs, err := s.outcomeRepo.ListByPlayer(ctx, p)
		if err != nil {
			return upstreamReadError(err, fmt.Sprintf("list outcomes for player %s in year %d", p, year))
		}

		scoped := make([]outcome.Outcome, 0, len(outs))
		for _, o := range outs {
			od, ok := dayByID[o.GameDayID]
			if !ok {
				return upstreamInconsistency("outcome references unknown game day %d", o.GameDayID)
			}
			if year == playerrecord.AllTimeYear || od.Year == year {
				scoped = append(scoped, o)
			}
		}

		if len(scoped) == 0 {
			// Absence, not a zeroed record, represents non-participation.
			delete(byPlayer, p)
		} else {
			byPlayer[p] = buildRecord(p, year, scoped, dayByID, s.thresholds)
		}
		s.progress.add(1)
	}

	records := make([]playerrecord.Record, 0, len(byPlayer))
	for _, rec := range byPlayer {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].PlayerID < records[j].PlayerID })

	applyRanks(records)
	if err := s.recordRepo.ReplaceByYear(ctx, year, records); err != nil {
		return fmt.Errorf("replace records for year %d: %w", year, err)
	}
	return nil
}

func addToScope(byScope map[int]map[string][]outcome.Outcome, year int, o outcome.Outcome) {
	players, ok := byScope[year]
	if !ok {
		players = make(map[string][]outcome.Outcome)
		byScope[year] = players
	}
	players[o.PlayerID] = append(players[o.PlayerID], o)
}

// upstreamReadError annotates a source failure and marks it retryable via
// ErrUpstreamRead while keeping the cause chain intact.
func upstreamReadError(err error, op string) error {
	return crerr.Mark(crerr.Wrap(err, op), ErrUpstreamRead)
}

func upstreamInconsistency(format string, args ...any) error {
	return crerr.Mark(crerr.Newf(format, args...), ErrUpstreamRead)
}
