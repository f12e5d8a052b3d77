package outcome

import "context"

// Repository is the read-only outcome source. The aggregation engine never
// writes outcomes; the surrounding system owns them.
type Repository interface {
	ListByGameDay(ctx context.Context, gameDayID int64) ([]Outcome, error)
	ListByPlayer(ctx context.Context, playerID string) ([]Outcome, error)
	// ListAll is the bulk scan used by full rebuilds.
	ListAll(ctx context.Context) ([]Outcome, error)
}
