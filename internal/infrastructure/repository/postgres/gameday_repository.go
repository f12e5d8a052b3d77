package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/footyclub/records/internal/domain/gameday"
)

const gameDayColumns = `id, year, date, game, mail_sent`

type GameDayRepository struct {
	db *sqlx.DB
}

func NewGameDayRepository(db *sqlx.DB) *GameDayRepository {
	return &GameDayRepository{db: db}
}

func (r *GameDayRepository) Get(ctx context.Context, id int64) (gameday.GameDay, bool, error) {
	query := `SELECT ` + gameDayColumns + ` FROM game_days WHERE id = $1`

	var row gameDayTableModel
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if isNotFound(err) {
			return gameday.GameDay{}, false, nil
		}
		return gameday.GameDay{}, false, fmt.Errorf("get game day: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *GameDayRepository) List(ctx context.Context) ([]gameday.GameDay, error) {
	query := `SELECT ` + gameDayColumns + ` FROM game_days ORDER BY date`

	var rows []gameDayTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list game days: %w", err)
	}

	out := make([]gameday.GameDay, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *GameDayRepository) ListYears(ctx context.Context) ([]int, error) {
	query := `SELECT DISTINCT year FROM game_days ORDER BY year`

	var years []int
	if err := r.db.SelectContext(ctx, &years, query); err != nil {
		return nil, fmt.Errorf("list game day years: %w", err)
	}
	return years, nil
}
