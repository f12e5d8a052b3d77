package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/footyclub/records/internal/domain/playerrecord"
)

const playerRecordColumns = `player_id, year, played, won, drawn, lost, points,
	averages, stalwart, speedy, pub, averages_qualifies, speedy_qualifies,
	rank_points, rank_averages, rank_stalwart, rank_speedy, rank_pub`

const insertPlayerRecordQuery = `INSERT INTO player_records (
	player_id, year, played, won, drawn, lost, points,
	averages, stalwart, speedy, pub, averages_qualifies, speedy_qualifies,
	rank_points, rank_averages, rank_stalwart, rank_speedy, rank_pub
) VALUES (
	:player_id, :year, :played, :won, :drawn, :lost, :points,
	:averages, :stalwart, :speedy, :pub, :averages_qualifies, :speedy_qualifies,
	:rank_points, :rank_averages, :rank_stalwart, :rank_speedy, :rank_pub
)`

type PlayerRecordRepository struct {
	db *sqlx.DB
}

func NewPlayerRecordRepository(db *sqlx.DB) *PlayerRecordRepository {
	return &PlayerRecordRepository{db: db}
}

func (r *PlayerRecordRepository) Get(ctx context.Context, playerID string, year int) (playerrecord.Record, bool, error) {
	query := `SELECT ` + playerRecordColumns + ` FROM player_records WHERE player_id = $1 AND year = $2`

	var row playerRecordTableModel
	if err := r.db.GetContext(ctx, &row, query, playerID, year); err != nil {
		if isNotFound(err) {
			return playerrecord.Record{}, false, nil
		}
		return playerrecord.Record{}, false, fmt.Errorf("get player record: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *PlayerRecordRepository) ListByYear(ctx context.Context, year int) ([]playerrecord.Record, error) {
	query := `SELECT ` + playerRecordColumns + ` FROM player_records WHERE year = $1 ORDER BY player_id`

	var rows []playerRecordTableModel
	if err := r.db.SelectContext(ctx, &rows, query, year); err != nil {
		return nil, fmt.Errorf("list player records by year: %w", err)
	}

	out := make([]playerrecord.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRecordRepository) ListYears(ctx context.Context, includeAllTime bool) ([]int, error) {
	query := `SELECT DISTINCT year FROM player_records ORDER BY year`
	if !includeAllTime {
		query = `SELECT DISTINCT year FROM player_records WHERE year <> 0 ORDER BY year`
	}

	var years []int
	if err := r.db.SelectContext(ctx, &years, query); err != nil {
		return nil, fmt.Errorf("list player record years: %w", err)
	}
	return years, nil
}

// ReplaceByYear swaps the whole year in one transaction so readers never
// observe a half-written table.
func (r *PlayerRecordRepository) ReplaceByYear(ctx context.Context, year int, records []playerrecord.Record) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace player records: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM player_records WHERE year = $1`, year); err != nil {
		return fmt.Errorf("clear player records for year: %w", err)
	}

	for _, rec := range records {
		rec.Year = year
		if _, err := tx.NamedExecContext(ctx, insertPlayerRecordQuery, playerRecordFromDomain(rec)); err != nil {
			return fmt.Errorf("insert player record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace player records: %w", err)
	}
	return nil
}

func (r *PlayerRecordRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM player_records`); err != nil {
		return fmt.Errorf("delete all player records: %w", err)
	}
	return nil
}
