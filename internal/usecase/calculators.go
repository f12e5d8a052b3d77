package usecase

import (
	"github.com/footyclub/records/internal/domain/gameday"
	"github.com/footyclub/records/internal/domain/outcome"
	"github.com/footyclub/records/internal/domain/playerrecord"
)

// Thresholds carries the qualification gates. It is injected at construction
// so recompute behaviour is reproducible and testable; nothing reads ambient
// configuration.
type Thresholds struct {
	MinGamesForAveragesTable int
	MinRepliesForSpeedyTable int
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		MinGamesForAveragesTable: 10,
		MinRepliesForSpeedyTable: 10,
	}
}

type metricResult struct {
	// value is nil when the metric does not exist for the scope (no played
	// games, no timed replies).
	value     *float64
	qualifies bool
}

type calculator func(outcomes []outcome.Outcome, gameDays map[int64]gameday.GameDay, t Thresholds) metricResult

// calculators is the closed kind-to-calculator table. Selection happens here
// once, never via per-call string dispatch.
var calculators = map[playerrecord.TableKind]calculator{
	playerrecord.TableKindPoints:   calcPoints,
	playerrecord.TableKindAverages: calcAverages,
	playerrecord.TableKindStalwart: calcStalwart,
	playerrecord.TableKindSpeedy:   calcSpeedy,
	playerrecord.TableKindPub:      calcPub,
}

// computeMetric evaluates one table's metric over one player's outcomes in
// one scope.
func computeMetric(kind playerrecord.TableKind, outcomes []outcome.Outcome, gameDays map[int64]gameday.GameDay, t Thresholds) metricResult {
	calc, ok := calculators[kind]
	if !ok {
		return metricResult{}
	}
	return calc(outcomes, gameDays, t)
}

// playedOutcome reports whether an outcome counts toward played/won/drawn/
// lost: the fixture happened and a result was recorded.
func playedOutcome(o outcome.Outcome, gameDays map[int64]gameday.GameDay) bool {
	gd, ok := gameDays[o.GameDayID]
	return ok && gd.Game && o.Points != nil
}

func calcPoints(outcomes []outcome.Outcome, gameDays map[int64]gameday.GameDay, _ Thresholds) metricResult {
	sum := 0
	for _, o := range outcomes {
		if playedOutcome(o, gameDays) {
			sum += *o.Points
		}
	}
	value := float64(sum)
	return metricResult{value: &value, qualifies: true}
}

func calcAverages(outcomes []outcome.Outcome, gameDays map[int64]gameday.GameDay, t Thresholds) metricResult {
	played := 0
	sum := 0
	for _, o := range outcomes {
		if playedOutcome(o, gameDays) {
			played++
			sum += *o.Points
		}
	}
	if played == 0 {
		return metricResult{}
	}
	value := float64(sum) / float64(played)
	return metricResult{value: &value, qualifies: played >= t.MinGamesForAveragesTable}
}

func calcStalwart(outcomes []outcome.Outcome, gameDays map[int64]gameday.GameDay, _ Thresholds) metricResult {
	attended := 0
	for _, o := range outcomes {
		gd, ok := gameDays[o.GameDayID]
		if ok && gd.Game && o.Responded(outcome.ResponseYes) {
			attended++
		}
	}
	value := float64(attended)
	return metricResult{value: &value, qualifies: true}
}

func calcSpeedy(outcomes []outcome.Outcome, _ map[int64]gameday.GameDay, t Thresholds) metricResult {
	// Cancelled game days still count: the reply predates any cancellation.
	replies := 0
	var sum int64
	for _, o := range outcomes {
		if o.ResponseInterval != nil {
			replies++
			sum += *o.ResponseInterval
		}
	}
	if replies == 0 {
		return metricResult{}
	}
	value := float64(sum) / float64(replies)
	return metricResult{value: &value, qualifies: replies >= t.MinRepliesForSpeedyTable}
}

func calcPub(outcomes []outcome.Outcome, _ map[int64]gameday.GameDay, _ Thresholds) metricResult {
	visits := 0
	for _, o := range outcomes {
		if o.Pub != nil {
			visits++
		}
	}
	value := float64(visits)
	return metricResult{value: &value, qualifies: true}
}

// buildRecord derives the full record for one (player, year) scope from the
// player's outcomes within it. Callers must not invoke it with an empty
// outcome slice: a player with no outcomes in a scope has no record at all.
func buildRecord(playerID string, year int, outcomes []outcome.Outcome, gameDays map[int64]gameday.GameDay, t Thresholds) playerrecord.Record {
	rec := playerrecord.Record{PlayerID: playerID, Year: year}

	for _, o := range outcomes {
		if !playedOutcome(o, gameDays) {
			continue
		}
		rec.Played++
		rec.Points += *o.Points
		switch *o.Points {
		case 3:
			rec.Won++
		case 1:
			rec.Drawn++
		default:
			rec.Lost++
		}
	}

	averages := computeMetric(playerrecord.TableKindAverages, outcomes, gameDays, t)
	rec.Averages = averages.value
	rec.AveragesQualifies = averages.qualifies

	stalwart := computeMetric(playerrecord.TableKindStalwart, outcomes, gameDays, t)
	rec.Stalwart = int(*stalwart.value)

	speedy := computeMetric(playerrecord.TableKindSpeedy, outcomes, gameDays, t)
	rec.Speedy = speedy.value
	rec.SpeedyQualifies = speedy.qualifies

	pub := computeMetric(playerrecord.TableKindPub, outcomes, gameDays, t)
	rec.Pub = int(*pub.value)

	return rec
}
