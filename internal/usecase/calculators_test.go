package usecase

import (
	"testing"

	"github.com/footyclub/records/internal/domain/gameday"
	"github.com/footyclub/records/internal/domain/outcome"
	"github.com/footyclub/records/internal/domain/playerrecord"
)

func testGameDays() map[int64]gameday.GameDay {
	return map[int64]gameday.GameDay{
		1: {ID: 1, Year: 2023, Game: true},
		2: {ID: 2, Year: 2023, Game: true},
		3: {ID: 3, Year: 2023, Game: false},
		4: {ID: 4, Year: 2023, Game: true},
	}
}

func testOutcome(gameDayID int64, points *int, response *outcome.Response, pub *int, interval *int64) outcome.Outcome {
	return outcome.Outcome{
		GameDayID:        gameDayID,
		PlayerID:         "alice",
		Response:         response,
		Points:           points,
		Pub:              pub,
		ResponseInterval: interval,
	}
}

func responsePtr(r outcome.Response) *outcome.Response { return &r }
func intPtr(v int) *int                                { return &v }
func int64Ptr(v int64) *int64                          { return &v }

func TestBuildRecord(t *testing.T) {
	t.Parallel()

	days := testGameDays()

	t.Run("counts results and points", func(t *testing.T) {
		outcomes := []outcome.Outcome{
			testOutcome(1, intPtr(3), responsePtr(outcome.ResponseYes), intPtr(1), int64Ptr(120)),
			testOutcome(2, intPtr(1), responsePtr(outcome.ResponseYes), nil, int64Ptr(300)),
			testOutcome(4, intPtr(0), responsePtr(outcome.ResponseYes), intPtr(1), nil),
		}

		rec := buildRecord("alice", 2023, outcomes, days, DefaultThresholds())

		if rec.Played != 3 || rec.Won != 1 || rec.Drawn != 1 || rec.Lost != 1 {
			t.Fatalf("unexpected results: played=%d won=%d drawn=%d lost=%d", rec.Played, rec.Won, rec.Drawn, rec.Lost)
		}
		if rec.Points != 4 {
			t.Fatalf("unexpected points: got=%d want=4", rec.Points)
		}
		if rec.Pub != 2 {
			t.Fatalf("unexpected pub count: got=%d want=2", rec.Pub)
		}
	})

	t.Run("cancelled day excluded from played and stalwart but counted for speedy", func(t *testing.T) {
		outcomes := []outcome.Outcome{
			testOutcome(1, intPtr(3), responsePtr(outcome.ResponseYes), nil, int64Ptr(100)),
			// Day 3 never happened; the reply still counts for speedy.
			testOutcome(3, nil, responsePtr(outcome.ResponseYes), nil, int64Ptr(300)),
		}

		rec := buildRecord("alice", 2023, outcomes, days, DefaultThresholds())

		if rec.Played != 1 {
			t.Fatalf("unexpected played: got=%d want=1", rec.Played)
		}
		if rec.Stalwart != 1 {
			t.Fatalf("unexpected stalwart: got=%d want=1", rec.Stalwart)
		}
		if rec.Speedy == nil || *rec.Speedy != 200 {
			t.Fatalf("unexpected speedy: got=%v want=200", rec.Speedy)
		}
	})

	t.Run("averages nil when no played games", func(t *testing.T) {
		outcomes := []outcome.Outcome{
			testOutcome(1, nil, responsePtr(outcome.ResponseNo), nil, int64Ptr(60)),
		}

		rec := buildRecord("alice", 2023, outcomes, days, DefaultThresholds())

		if rec.Averages != nil {
			t.Fatalf("expected nil averages, got %v", *rec.Averages)
		}
		if rec.AveragesQualifies {
			t.Fatal("expected averages not to qualify")
		}
	})

	t.Run("speedy nil when no timed replies", func(t *testing.T) {
		outcomes := []outcome.Outcome{
			testOutcome(1, intPtr(3), responsePtr(outcome.ResponseYes), nil, nil),
		}

		rec := buildRecord("alice", 2023, outcomes, days, DefaultThresholds())

		if rec.Speedy != nil {
			t.Fatalf("expected nil speedy, got %v", *rec.Speedy)
		}
	})

	t.Run("stalwart ignores non-yes responses", func(t *testing.T) {
		outcomes := []outcome.Outcome{
			testOutcome(1, intPtr(3), responsePtr(outcome.ResponseYes), nil, nil),
			testOutcome(2, nil, responsePtr(outcome.ResponseDunno), nil, nil),
			testOutcome(4, nil, nil, nil, nil),
		}

		rec := buildRecord("alice", 2023, outcomes, days, DefaultThresholds())

		if rec.Stalwart != 1 {
			t.Fatalf("unexpected stalwart: got=%d want=1", rec.Stalwart)
		}
	})
}

func TestAveragesQualification(t *testing.T) {
	t.Parallel()

	days := make(map[int64]gameday.GameDay)
	for i := int64(1); i <= 12; i++ {
		days[i] = gameday.GameDay{ID: i, Year: 2023, Game: true}
	}

	buildOutcomes := func(n int) []outcome.Outcome {
		out := make([]outcome.Outcome, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, testOutcome(int64(i+1), intPtr(3), responsePtr(outcome.ResponseYes), nil, nil))
		}
		return out
	}

	t.Run("below threshold has a value but does not qualify", func(t *testing.T) {
		rec := buildRecord("alice", 2023, buildOutcomes(9), days, DefaultThresholds())

		if rec.Averages == nil || *rec.Averages != 3 {
			t.Fatalf("unexpected averages: got=%v want=3", rec.Averages)
		}
		if rec.AveragesQualifies {
			t.Fatal("9 played games must not qualify with a threshold of 10")
		}
	})

	t.Run("at threshold qualifies", func(t *testing.T) {
		rec := buildRecord("alice", 2023, buildOutcomes(10), days, DefaultThresholds())

		if !rec.AveragesQualifies {
			t.Fatal("10 played games must qualify with a threshold of 10")
		}
	})
}

func TestComputeMetricUnknownKind(t *testing.T) {
	t.Parallel()

	res := computeMetric(playerrecord.TableKind("nonsense"), nil, nil, DefaultThresholds())
	if res.value != nil || res.qualifies {
		t.Fatalf("expected empty result, got %+v", res)
	}
}
