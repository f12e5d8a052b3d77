package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/footyclub/records/internal/domain/playerrecord"
	"github.com/footyclub/records/internal/platform/metrics"
)

// ProgressReader exposes rebuild progress to the query surface.
type ProgressReader interface {
	Progress() Progress
}

// QueryService serves table snapshots, single-record lookups, winners and
// rebuild progress. It only reads; ranks come precomputed from the
// aggregation engine except for the unqualified table view, which is
// re-ranked over the stored metrics on demand.
type QueryService struct {
	recordRepo playerrecord.Repository
	progress   ProgressReader
	metrics    *metrics.Service
}

func NewQueryService(recordRepo playerrecord.Repository, progress ProgressReader, metricsService *metrics.Service) *QueryService {
	return &QueryService{
		recordRepo: recordRepo,
		progress:   progress,
		metrics:    metricsService,
	}
}

// GetTable returns one table for one scope, best rank first. With
// qualifiedOnly the persisted ranking is served as-is; without it the full
// metric-bearing record set is dense-ranked fresh so sub-threshold players
// are visible too. take <= 0 returns the whole table.
func (s *QueryService) GetTable(ctx context.Context, kind playerrecord.TableKind, year int, qualifiedOnly bool, take int) ([]playerrecord.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.GetTable")
	defer span.End()

	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown table kind %q", ErrInvalidInput, string(kind))
	}
	if err := s.ensureKnownYear(ctx, year); err != nil {
		return nil, err
	}

	records, err := s.recordRepo.ListByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("list records for year %d: %w", year, err)
	}
	s.metrics.IncTableRead(kind.String())

	var rows []playerrecord.Record
	if qualifiedOnly {
		rows = make([]playerrecord.Record, 0, len(records))
		for _, rec := range records {
			if rec.Rank(kind) != nil {
				rows = append(rows, rec)
			}
		}
		sort.SliceStable(rows, func(i, j int) bool {
			ri, rj := *rows[i].Rank(kind), *rows[j].Rank(kind)
			if ri != rj {
				return ri < rj
			}
			return rows[i].PlayerID < rows[j].PlayerID
		})
	} else {
		rows = rankTable(kind, records)
	}

	if take > 0 && take < len(rows) {
		rows = rows[:take]
	}
	return rows, nil
}

// GetForYearByPlayer looks up a single record. Absence is reported through
// the boolean, not an error: a player with no outcomes in a scope simply has
// no row.
func (s *QueryService) GetForYearByPlayer(ctx context.Context, year int, playerID string) (playerrecord.Record, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.GetForYearByPlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return playerrecord.Record{}, false, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if year < 0 {
		return playerrecord.Record{}, false, fmt.Errorf("%w: negative year %d", ErrInvalidInput, year)
	}

	rec, exists, err := s.recordRepo.Get(ctx, playerID, year)
	if err != nil {
		return playerrecord.Record{}, false, fmt.Errorf("get record player=%s year=%d: %w", playerID, year, err)
	}
	return rec, exists, nil
}

// GetAllYears returns the ascending set of years with at least one record,
// with the all-time sentinel first when requested.
func (s *QueryService) GetAllYears(ctx context.Context, includeAllTime bool) ([]int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.GetAllYears")
	defer span.End()

	years, err := s.recordRepo.ListYears(ctx, includeAllTime)
	if err != nil {
		return nil, fmt.Errorf("list record years: %w", err)
	}
	return years, nil
}

// GetWinners returns the rank-1 record(s) for one table. With a year it is
// that scope's trophy holder(s); ties at rank 1 all win. Without a year it
// is the winners' roll: every season's rank-1 holder(s) for the table, in
// year order; seasons with no ranked record for the kind are omitted.
func (s *QueryService) GetWinners(ctx context.Context, kind playerrecord.TableKind, year *int) ([]playerrecord.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.GetWinners")
	defer span.End()

	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown table kind %q", ErrInvalidInput, string(kind))
	}

	if year != nil {
		if err := s.ensureKnownYear(ctx, *year); err != nil {
			return nil, err
		}
		return s.winnersForYear(ctx, kind, *year)
	}

	years, err := s.recordRepo.ListYears(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list record years: %w", err)
	}

	out := make([]playerrecord.Record, 0, len(years))
	for _, y := range years {
		winners, err := s.winnersForYear(ctx, kind, y)
		if err != nil {
			return nil, err
		}
		out = append(out, winners...)
	}
	return out, nil
}

func (s *QueryService) winnersForYear(ctx context.Context, kind playerrecord.TableKind, year int) ([]playerrecord.Record, error) {
	records, err := s.recordRepo.ListByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("list records for year %d: %w", year, err)
	}

	winners := make([]playerrecord.Record, 0, 1)
	for _, rec := range records {
		if rank := rec.Rank(kind); rank != nil && *rank == 1 {
			winners = append(winners, rec)
		}
	}
	sort.Slice(winners, func(i, j int) bool { return winners[i].PlayerID < winners[j].PlayerID })
	return winners, nil
}

// GetProgress exposes the aggregation engine's rebuild progress for polling.
func (s *QueryService) GetProgress(ctx context.Context) Progress {
	_, span := startUsecaseSpan(ctx, "usecase.QueryService.GetProgress")
	defer span.End()

	if s.progress == nil {
		return Progress{}
	}
	return s.progress.Progress()
}

func (s *QueryService) ensureKnownYear(ctx context.Context, year int) error {
	if year < 0 {
		return fmt.Errorf("%w: negative year %d", ErrInvalidInput, year)
	}

	years, err := s.recordRepo.ListYears(ctx, true)
	if err != nil {
		return fmt.Errorf("list record years: %w", err)
	}
	for _, y := range years {
		if y == year {
			return nil
		}
	}
	return fmt.Errorf("%w: no records for year %d", ErrNotFound, year)
}
