package postgres

import (
	"database/sql"

	"github.com/footyclub/records/internal/domain/playerrecord"
)

type playerRecordTableModel struct {
	PlayerID          string          `db:"player_id"`
	Year              int             `db:"year"`
	Played            int             `db:"played"`
	Won               int             `db:"won"`
	Drawn             int             `db:"drawn"`
	Lost              int             `db:"lost"`
	Points            int             `db:"points"`
	Averages          sql.NullFloat64 `db:"averages"`
	Stalwart          int             `db:"stalwart"`
	Speedy            sql.NullFloat64 `db:"speedy"`
	Pub               int             `db:"pub"`
	AveragesQualifies bool            `db:"averages_qualifies"`
	SpeedyQualifies   bool            `db:"speedy_qualifies"`
	RankPoints        sql.NullInt64   `db:"rank_points"`
	RankAverages      sql.NullInt64   `db:"rank_averages"`
	RankStalwart      sql.NullInt64   `db:"rank_stalwart"`
	RankSpeedy        sql.NullInt64   `db:"rank_speedy"`
	RankPub           sql.NullInt64   `db:"rank_pub"`
}

func (m playerRecordTableModel) toDomain() playerrecord.Record {
	return playerrecord.Record{
		PlayerID:          m.PlayerID,
		Year:              m.Year,
		Played:            m.Played,
		Won:               m.Won,
		Drawn:             m.Drawn,
		Lost:              m.Lost,
		Points:            m.Points,
		Averages:          nullFloatToPtr(m.Averages),
		Stalwart:          m.Stalwart,
		Speedy:            nullFloatToPtr(m.Speedy),
		Pub:               m.Pub,
		AveragesQualifies: m.AveragesQualifies,
		SpeedyQualifies:   m.SpeedyQualifies,
		RankPoints:        nullIntToPtr(m.RankPoints),
		RankAverages:      nullIntToPtr(m.RankAverages),
		RankStalwart:      nullIntToPtr(m.RankStalwart),
		RankSpeedy:        nullIntToPtr(m.RankSpeedy),
		RankPub:           nullIntToPtr(m.RankPub),
	}
}

func playerRecordFromDomain(rec playerrecord.Record) playerRecordTableModel {
	return playerRecordTableModel{
		PlayerID:          rec.PlayerID,
		Year:              rec.Year,
		Played:            rec.Played,
		Won:               rec.Won,
		Drawn:             rec.Drawn,
		Lost:              rec.Lost,
		Points:            rec.Points,
		Averages:          ptrToNullFloat(rec.Averages),
		Stalwart:          rec.Stalwart,
		Speedy:            ptrToNullFloat(rec.Speedy),
		Pub:               rec.Pub,
		AveragesQualifies: rec.AveragesQualifies,
		SpeedyQualifies:   rec.SpeedyQualifies,
		RankPoints:        ptrToNullInt(rec.RankPoints),
		RankAverages:      ptrToNullInt(rec.RankAverages),
		RankStalwart:      ptrToNullInt(rec.RankStalwart),
		RankSpeedy:        ptrToNullInt(rec.RankSpeedy),
		RankPub:           ptrToNullInt(rec.RankPub),
	}
}
