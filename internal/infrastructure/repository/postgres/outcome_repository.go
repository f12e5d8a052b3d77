package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/footyclub/records/internal/domain/outcome"
)

const outcomeColumns = `game_day_id, player_id, response, team, points, goalie, pub, response_interval`

type OutcomeRepository struct {
	db *sqlx.DB
}

func NewOutcomeRepository(db *sqlx.DB) *OutcomeRepository {
	return &OutcomeRepository{db: db}
}

func (r *OutcomeRepository) ListByGameDay(ctx context.Context, gameDayID int64) ([]outcome.Outcome, error) {
	query := `SELECT ` + outcomeColumns + ` FROM outcomes WHERE game_day_id = $1 ORDER BY player_id`

	var rows []outcomeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, gameDayID); err != nil {
		return nil, fmt.Errorf("list outcomes by game day: %w", err)
	}
	return outcomesToDomain(rows), nil
}

func (r *OutcomeRepository) ListByPlayer(ctx context.Context, playerID string) ([]outcome.Outcome, error) {
	query := `SELECT ` + outcomeColumns + ` FROM outcomes WHERE player_id = $1 ORDER BY game_day_id`

	var rows []outcomeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, playerID); err != nil {
		return nil, fmt.Errorf("list outcomes by player: %w", err)
	}
	return outcomesToDomain(rows), nil
}

func (r *OutcomeRepository) ListAll(ctx context.Context) ([]outcome.Outcome, error) {
	query := `SELECT ` + outcomeColumns + ` FROM outcomes ORDER BY game_day_id, player_id`

	var rows []outcomeTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list all outcomes: %w", err)
	}
	return outcomesToDomain(rows), nil
}

func outcomesToDomain(rows []outcomeTableModel) []outcome.Outcome {
	out := make([]outcome.Outcome, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}
