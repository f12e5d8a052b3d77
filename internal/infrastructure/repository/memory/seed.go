package memory

import (
	"time"

	"github.com/footyclub/records/internal/domain/gameday"
	"github.com/footyclub/records/internal/domain/outcome"
)

// Seed data drives the in-memory dev mode: two short seasons of Tuesday
// games for a handful of regulars, including one cancelled fixture.

func SeedGameDays() []gameday.GameDay {
	mail := func(day time.Time) *time.Time {
		sent := day.Add(-48 * time.Hour)
		return &sent
	}

	days := []gameday.GameDay{
		{ID: 1, Year: 2023, Date: date(2023, 9, 5), Game: true},
		{ID: 2, Year: 2023, Date: date(2023, 9, 12), Game: true},
		{ID: 3, Year: 2023, Date: date(2023, 9, 19), Game: false},
		{ID: 4, Year: 2023, Date: date(2023, 9, 26), Game: true},
		{ID: 5, Year: 2024, Date: date(2024, 4, 2), Game: true},
		{ID: 6, Year: 2024, Date: date(2024, 4, 9), Game: true},
		{ID: 7, Year: 2024, Date: date(2024, 4, 16), Game: true},
	}
	for i := range days {
		days[i].MailSent = mail(days[i].Date)
	}
	return days
}

func SeedOutcomes() []outcome.Outcome {
	return []outcome.Outcome{
		row(1, "alice", outcome.ResponseYes, teamPtr(outcome.TeamA), intPtr(3), intPtr(1), int64Ptr(120)),
		row(1, "bob", outcome.ResponseYes, teamPtr(outcome.TeamB), intPtr(0), intPtr(1), int64Ptr(3600)),
		row(1, "carol", outcome.ResponseNo, nil, nil, nil, int64Ptr(45)),
		row(2, "alice", outcome.ResponseYes, teamPtr(outcome.TeamA), intPtr(1), nil, int64Ptr(300)),
		row(2, "bob", outcome.ResponseYes, teamPtr(outcome.TeamA), intPtr(1), intPtr(2), int64Ptr(900)),
		row(2, "dave", outcome.ResponseDunno, nil, nil, nil, int64Ptr(7200)),
		// Cancelled fixture: responses count, results never arrive.
		row(3, "alice", outcome.ResponseYes, nil, nil, nil, int64Ptr(60)),
		row(3, "bob", outcome.ResponseYes, nil, nil, nil, int64Ptr(1800)),
		row(4, "alice", outcome.ResponseYes, teamPtr(outcome.TeamB), intPtr(3), intPtr(1), int64Ptr(90)),
		row(4, "carol", outcome.ResponseYes, teamPtr(outcome.TeamA), intPtr(0), intPtr(1), nil),
		row(5, "alice", outcome.ResponseYes, teamPtr(outcome.TeamA), intPtr(0), nil, int64Ptr(150)),
		row(5, "bob", outcome.ResponseYes, teamPtr(outcome.TeamB), intPtr(3), intPtr(2), int64Ptr(600)),
		row(6, "bob", outcome.ResponseYes, teamPtr(outcome.TeamA), intPtr(3), intPtr(1), int64Ptr(240)),
		row(6, "dave", outcome.ResponseYes, teamPtr(outcome.TeamB), intPtr(0), intPtr(1), int64Ptr(30)),
		row(7, "alice", outcome.ResponseYes, teamPtr(outcome.TeamA), intPtr(1), intPtr(1), int64Ptr(180)),
		row(7, "bob", outcome.ResponseYes, teamPtr(outcome.TeamB), intPtr(1), nil, int64Ptr(1200)),
		row(7, "carol", outcome.ResponseNo, nil, nil, nil, int64Ptr(90)),
	}
}

func row(gameDayID int64, playerID string, response outcome.Response, team *outcome.Team, points, pub *int, interval *int64) outcome.Outcome {
	r := response
	return outcome.Outcome{
		GameDayID:        gameDayID,
		PlayerID:         playerID,
		Response:         &r,
		Team:             team,
		Points:           points,
		Pub:              pub,
		ResponseInterval: interval,
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 19, 0, 0, 0, time.UTC)
}

func teamPtr(t outcome.Team) *outcome.Team { return &t }
func intPtr(v int) *int                    { return &v }
func int64Ptr(v int64) *int64              { return &v }
