package httpapi

import (
	"github.com/footyclub/records/internal/domain/playerrecord"
	"github.com/footyclub/records/internal/usecase"
)

type playerRecordDTO struct {
	PlayerID          string   `json:"playerId"`
	Year              int      `json:"year"`
	Played            int      `json:"played"`
	Won               int      `json:"won"`
	Drawn             int      `json:"drawn"`
	Lost              int      `json:"lost"`
	Points            int      `json:"points"`
	Averages          *float64 `json:"averages"`
	Stalwart          int      `json:"stalwart"`
	Speedy            *float64 `json:"speedy"`
	Pub               int      `json:"pub"`
	AveragesQualifies bool     `json:"averagesQualifies"`
	SpeedyQualifies   bool     `json:"speedyQualifies"`
	RankPoints        *int     `json:"rankPoints,omitempty"`
	RankAverages      *int     `json:"rankAverages,omitempty"`
	RankStalwart      *int     `json:"rankStalwart,omitempty"`
	RankSpeedy        *int     `json:"rankSpeedy,omitempty"`
	RankPub           *int     `json:"rankPub,omitempty"`
}

type tableDTO struct {
	Kind          string            `json:"kind"`
	Year          int               `json:"year"`
	QualifiedOnly bool              `json:"qualifiedOnly"`
	Rows          []playerRecordDTO `json:"rows"`
}

type winnersDTO struct {
	Kind    string            `json:"kind"`
	Year    *int              `json:"year,omitempty"`
	Winners []playerRecordDTO `json:"winners"`
}

type yearsDTO struct {
	Years []int `json:"years"`
}

type progressDTO struct {
	State     string `json:"state"`
	Processed uint64 `json:"processed"`
	Total     uint64 `json:"total"`
}

type recomputeAcceptedDTO struct {
	Status string `json:"status"`
}

type recomputeGameDayDTO struct {
	GameDayID int64  `json:"gameDayId"`
	Status    string `json:"status"`
}

type getTableQuery struct {
	Year          int  `validate:"gte=0"`
	QualifiedOnly bool
	Take          int `validate:"gte=0,lte=1000"`
}

func recordToDTO(rec playerrecord.Record) playerRecordDTO {
	return playerRecordDTO{
		PlayerID:          rec.PlayerID,
		Year:              rec.Year,
		Played:            rec.Played,
		Won:               rec.Won,
		Drawn:             rec.Drawn,
		Lost:              rec.Lost,
		Points:            rec.Points,
		Averages:          rec.Averages,
		Stalwart:          rec.Stalwart,
		Speedy:            rec.Speedy,
		Pub:               rec.Pub,
		AveragesQualifies: rec.AveragesQualifies,
		SpeedyQualifies:   rec.SpeedyQualifies,
		RankPoints:        rec.RankPoints,
		RankAverages:      rec.RankAverages,
		RankStalwart:      rec.RankStalwart,
		RankSpeedy:        rec.RankSpeedy,
		RankPub:           rec.RankPub,
	}
}

func recordsToDTOs(records []playerrecord.Record) []playerRecordDTO {
	out := make([]playerRecordDTO, 0, len(records))
	for _, rec := range records {
		out = append(out, recordToDTO(rec))
	}
	return out
}

func progressToDTO(p usecase.Progress) progressDTO {
	return progressDTO{
		State:     p.State.String(),
		Processed: p.Processed,
		Total:     p.Total,
	}
}
