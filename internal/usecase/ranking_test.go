package usecase

import (
	"testing"

	"github.com/footyclub/records/internal/domain/playerrecord"
)

func float64Ptr(v float64) *float64 { return &v }

func rankOf(t *testing.T, rec playerrecord.Record, kind playerrecord.TableKind) int {
	t.Helper()
	rank := rec.Rank(kind)
	if rank == nil {
		t.Fatalf("player %s has no rank for %s", rec.PlayerID, kind)
	}
	return *rank
}

func TestApplyRanks(t *testing.T) {
	t.Parallel()

	t.Run("ties share a rank and leave no gaps", func(t *testing.T) {
		records := []playerrecord.Record{
			{PlayerID: "alice", Points: 10},
			{PlayerID: "bob", Points: 10},
			{PlayerID: "carol", Points: 8},
			{PlayerID: "dave", Points: 8},
			{PlayerID: "eve", Points: 5},
		}

		applyRanks(records)

		want := map[string]int{"alice": 1, "bob": 1, "carol": 2, "dave": 2, "eve": 3}
		for _, rec := range records {
			if got := rankOf(t, rec, playerrecord.TableKindPoints); got != want[rec.PlayerID] {
				t.Fatalf("player %s: got rank %d, want %d", rec.PlayerID, got, want[rec.PlayerID])
			}
		}
	})

	t.Run("unqualified records get no persisted rank", func(t *testing.T) {
		records := []playerrecord.Record{
			{PlayerID: "alice", Averages: float64Ptr(2.5), AveragesQualifies: true},
			{PlayerID: "bob", Averages: float64Ptr(3.0), AveragesQualifies: false},
			{PlayerID: "carol", Averages: nil},
		}

		applyRanks(records)

		if records[0].RankAverages == nil || *records[0].RankAverages != 1 {
			t.Fatalf("alice should hold rank 1, got %v", records[0].RankAverages)
		}
		if records[1].RankAverages != nil {
			t.Fatalf("unqualified bob should have no rank, got %d", *records[1].RankAverages)
		}
		if records[2].RankAverages != nil {
			t.Fatalf("carol without a metric should have no rank, got %d", *records[2].RankAverages)
		}
	})

	t.Run("speedy ranks ascending", func(t *testing.T) {
		records := []playerrecord.Record{
			{PlayerID: "alice", Speedy: float64Ptr(900), SpeedyQualifies: true},
			{PlayerID: "bob", Speedy: float64Ptr(120), SpeedyQualifies: true},
		}

		applyRanks(records)

		if got := rankOf(t, records[1], playerrecord.TableKindSpeedy); got != 1 {
			t.Fatalf("fastest replier should hold rank 1, got %d", got)
		}
		if got := rankOf(t, records[0], playerrecord.TableKindSpeedy); got != 2 {
			t.Fatalf("slowest replier should hold rank 2, got %d", got)
		}
	})

	t.Run("reranking clears stale ranks", func(t *testing.T) {
		stale := 7
		records := []playerrecord.Record{
			{PlayerID: "alice", Points: 4, RankPoints: &stale},
		}

		applyRanks(records)

		if got := rankOf(t, records[0], playerrecord.TableKindPoints); got != 1 {
			t.Fatalf("got rank %d, want 1", got)
		}
	})
}

func TestRankTable(t *testing.T) {
	t.Parallel()

	t.Run("three-way tie at the top", func(t *testing.T) {
		records := []playerrecord.Record{
			{PlayerID: "dave", Points: 3},
			{PlayerID: "carol", Points: 9},
			{PlayerID: "alice", Points: 9},
			{PlayerID: "bob", Points: 9},
		}

		rows := rankTable(playerrecord.TableKindPoints, records)

		if len(rows) != 4 {
			t.Fatalf("unexpected row count: got=%d want=4", len(rows))
		}
		for i := 0; i < 3; i++ {
			if got := rankOf(t, rows[i], playerrecord.TableKindPoints); got != 1 {
				t.Fatalf("row %d: got rank %d, want 1", i, got)
			}
		}
		if got := rankOf(t, rows[3], playerrecord.TableKindPoints); got != 2 {
			t.Fatalf("next distinct value should hold rank 2, got %d", got)
		}
		// Ties order by player id.
		if rows[0].PlayerID != "alice" || rows[1].PlayerID != "bob" || rows[2].PlayerID != "carol" {
			t.Fatalf("unexpected tie order: %s, %s, %s", rows[0].PlayerID, rows[1].PlayerID, rows[2].PlayerID)
		}
	})

	t.Run("includes unqualified records without mutating input", func(t *testing.T) {
		records := []playerrecord.Record{
			{PlayerID: "alice", Averages: float64Ptr(2.0), AveragesQualifies: true},
			{PlayerID: "bob", Averages: float64Ptr(3.0), AveragesQualifies: false},
			{PlayerID: "carol"},
		}

		rows := rankTable(playerrecord.TableKindAverages, records)

		if len(rows) != 2 {
			t.Fatalf("unexpected row count: got=%d want=2", len(rows))
		}
		if rows[0].PlayerID != "bob" {
			t.Fatalf("unqualified bob still tops the open view, got %s", rows[0].PlayerID)
		}
		if got := rankOf(t, rows[0], playerrecord.TableKindAverages); got != 1 {
			t.Fatalf("got rank %d, want 1", got)
		}
		if records[1].RankAverages != nil {
			t.Fatal("input records must not be mutated")
		}
	})
}
