package postgres

import (
	"database/sql"

	"github.com/footyclub/records/internal/domain/outcome"
)

type outcomeTableModel struct {
	GameDayID        int64          `db:"game_day_id"`
	PlayerID         string         `db:"player_id"`
	Response         sql.NullString `db:"response"`
	Team             sql.NullString `db:"team"`
	Points           sql.NullInt64  `db:"points"`
	Goalie           bool           `db:"goalie"`
	Pub              sql.NullInt64  `db:"pub"`
	ResponseInterval sql.NullInt64  `db:"response_interval"`
}

func (m outcomeTableModel) toDomain() outcome.Outcome {
	o := outcome.Outcome{
		GameDayID:        m.GameDayID,
		PlayerID:         m.PlayerID,
		Goalie:           m.Goalie,
		Points:           nullIntToPtr(m.Points),
		Pub:              nullIntToPtr(m.Pub),
		ResponseInterval: nullInt64ToPtr(m.ResponseInterval),
	}
	if m.Response.Valid {
		r := outcome.Response(m.Response.String)
		o.Response = &r
	}
	if m.Team.Valid {
		t := outcome.Team(m.Team.String)
		o.Team = &t
	}
	return o
}
