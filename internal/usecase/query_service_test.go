package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/footyclub/records/internal/domain/playerrecord"
	"github.com/footyclub/records/internal/infrastructure/repository/memory"
)

type stubProgressReader struct {
	progress Progress
}

func (r *stubProgressReader) Progress() Progress { return r.progress }

func seedQueryRecords(t *testing.T) *memory.PlayerRecordRepository {
	t.Helper()
	ctx := context.Background()
	repo := memory.NewPlayerRecordRepository()

	season2023 := []playerrecord.Record{
		{PlayerID: "alice", Year: 2023, Played: 10, Points: 9, Averages: float64Ptr(0.9), AveragesQualifies: true, Pub: 4},
		{PlayerID: "bob", Year: 2023, Played: 3, Points: 9, Averages: float64Ptr(3.0), Pub: 2},
		{PlayerID: "carol", Year: 2023, Played: 9, Points: 9, Averages: float64Ptr(1.0), Pub: 6},
		{PlayerID: "dave", Year: 2023, Played: 2, Points: 3, Averages: float64Ptr(1.5), Pub: 1},
	}
	applyRanks(season2023)
	if err := repo.ReplaceByYear(ctx, 2023, season2023); err != nil {
		t.Fatalf("seed 2023: %v", err)
	}

	season2024 := []playerrecord.Record{
		{PlayerID: "bob", Year: 2024, Played: 3, Points: 7, Averages: float64Ptr(2.33), Pub: 3},
		{PlayerID: "dave", Year: 2024, Played: 1, Points: 0, Averages: float64Ptr(0), Pub: 1},
	}
	applyRanks(season2024)
	if err := repo.ReplaceByYear(ctx, 2024, season2024); err != nil {
		t.Fatalf("seed 2024: %v", err)
	}

	allTime := []playerrecord.Record{
		{PlayerID: "alice", Year: 0, Played: 10, Points: 9, Averages: float64Ptr(0.9), AveragesQualifies: true, Pub: 4},
		{PlayerID: "bob", Year: 0, Played: 6, Points: 16, Averages: float64Ptr(2.66), Pub: 5},
	}
	applyRanks(allTime)
	if err := repo.ReplaceByYear(ctx, playerrecord.AllTimeYear, allTime); err != nil {
		t.Fatalf("seed all-time: %v", err)
	}

	return repo
}

func newTestQuery(t *testing.T) *QueryService {
	t.Helper()
	return NewQueryService(seedQueryRecords(t), &stubProgressReader{}, nil)
}

func TestGetTable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestQuery(t)

	t.Run("qualified view serves persisted ranks", func(t *testing.T) {
		rows, err := svc.GetTable(ctx, playerrecord.TableKindAverages, 2023, true, 0)
		if err != nil {
			t.Fatalf("get table: %v", err)
		}
		// Only alice qualifies for averages in 2023.
		if len(rows) != 1 || rows[0].PlayerID != "alice" {
			t.Fatalf("unexpected qualified rows: %+v", rows)
		}
	})

	t.Run("open view includes sub-threshold players", func(t *testing.T) {
		rows, err := svc.GetTable(ctx, playerrecord.TableKindAverages, 2023, false, 0)
		if err != nil {
			t.Fatalf("get table: %v", err)
		}
		if len(rows) != 4 {
			t.Fatalf("unexpected open row count: got=%d want=4", len(rows))
		}
		if rows[0].PlayerID != "bob" {
			t.Fatalf("bob's 3.0 average should top the open view, got %s", rows[0].PlayerID)
		}
		if rows[0].RankAverages == nil || *rows[0].RankAverages != 1 {
			t.Fatalf("open view must be freshly ranked, got %v", rows[0].RankAverages)
		}
	})

	t.Run("take truncates after ordering", func(t *testing.T) {
		rows, err := svc.GetTable(ctx, playerrecord.TableKindPoints, 2023, true, 2)
		if err != nil {
			t.Fatalf("get table: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("unexpected row count: got=%d want=2", len(rows))
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := svc.GetTable(ctx, playerrecord.TableKind("bogus"), 2023, true, 0)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected invalid input, got %v", err)
		}
	})

	t.Run("unknown year", func(t *testing.T) {
		_, err := svc.GetTable(ctx, playerrecord.TableKindPoints, 1999, true, 0)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("negative year", func(t *testing.T) {
		_, err := svc.GetTable(ctx, playerrecord.TableKindPoints, -1, true, 0)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected invalid input, got %v", err)
		}
	})
}

func TestGetWinners(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestQuery(t)

	t.Run("all rank-1 ties win", func(t *testing.T) {
		year := 2023
		winners, err := svc.GetWinners(ctx, playerrecord.TableKindPoints, &year)
		if err != nil {
			t.Fatalf("get winners: %v", err)
		}
		// alice, bob and carol all sit on 9 points.
		if len(winners) != 3 {
			t.Fatalf("unexpected winner count: got=%d want=3", len(winners))
		}
		if winners[0].PlayerID != "alice" || winners[1].PlayerID != "bob" || winners[2].PlayerID != "carol" {
			t.Fatalf("unexpected winners: %s, %s, %s", winners[0].PlayerID, winners[1].PlayerID, winners[2].PlayerID)
		}
	})

	t.Run("winners roll spans seasons but not all-time", func(t *testing.T) {
		winners, err := svc.GetWinners(ctx, playerrecord.TableKindPub, nil)
		if err != nil {
			t.Fatalf("get winners roll: %v", err)
		}
		if len(winners) != 2 {
			t.Fatalf("unexpected roll length: got=%d want=2", len(winners))
		}
		if winners[0].Year != 2023 || winners[0].PlayerID != "carol" {
			t.Fatalf("unexpected 2023 pub winner: %+v", winners[0])
		}
		if winners[1].Year != 2024 || winners[1].PlayerID != "bob" {
			t.Fatalf("unexpected 2024 pub winner: %+v", winners[1])
		}
	})

	t.Run("unknown year", func(t *testing.T) {
		year := 1999
		_, err := svc.GetWinners(ctx, playerrecord.TableKindPoints, &year)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

func TestGetForYearByPlayer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestQuery(t)

	t.Run("found", func(t *testing.T) {
		rec, exists, err := svc.GetForYearByPlayer(ctx, 2023, "alice")
		if err != nil || !exists {
			t.Fatalf("get alice: exists=%t err=%v", exists, err)
		}
		if rec.Points != 9 {
			t.Fatalf("unexpected points: got=%d want=9", rec.Points)
		}
	})

	t.Run("absence is not an error", func(t *testing.T) {
		_, exists, err := svc.GetForYearByPlayer(ctx, 2024, "alice")
		if err != nil {
			t.Fatalf("get absent record: %v", err)
		}
		if exists {
			t.Fatal("alice has no 2024 record")
		}
	})

	t.Run("blank player id", func(t *testing.T) {
		_, _, err := svc.GetForYearByPlayer(ctx, 2023, "  ")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected invalid input, got %v", err)
		}
	})

	t.Run("negative year", func(t *testing.T) {
		_, _, err := svc.GetForYearByPlayer(ctx, -3, "alice")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected invalid input, got %v", err)
		}
	})
}

func TestGetAllYears(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestQuery(t)

	withAllTime, err := svc.GetAllYears(ctx, true)
	if err != nil {
		t.Fatalf("get years: %v", err)
	}
	if len(withAllTime) != 3 || withAllTime[0] != playerrecord.AllTimeYear {
		t.Fatalf("unexpected years: %v", withAllTime)
	}

	seasonsOnly, err := svc.GetAllYears(ctx, false)
	if err != nil {
		t.Fatalf("get seasons: %v", err)
	}
	if len(seasonsOnly) != 2 || seasonsOnly[0] != 2023 || seasonsOnly[1] != 2024 {
		t.Fatalf("unexpected seasons: %v", seasonsOnly)
	}
}

func TestGetProgress(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	reader := &stubProgressReader{progress: Progress{Processed: 3, Total: 10, State: RunStateRunning}}
	svc := NewQueryService(memory.NewPlayerRecordRepository(), reader, nil)

	got := svc.GetProgress(ctx)
	if got.Processed != 3 || got.Total != 10 || got.State != RunStateRunning {
		t.Fatalf("unexpected progress: %+v", got)
	}

	bare := NewQueryService(memory.NewPlayerRecordRepository(), nil, nil)
	if got := bare.GetProgress(ctx); got.State != RunStateIdle {
		t.Fatalf("nil reader should report idle, got %s", got.State)
	}
}
