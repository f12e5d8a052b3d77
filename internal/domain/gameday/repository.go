package gameday

import "context"

// Repository is the read-only game day calendar source.
type Repository interface {
	Get(ctx context.Context, id int64) (GameDay, bool, error)
	List(ctx context.Context) ([]GameDay, error)
	ListYears(ctx context.Context) ([]int, error)
}
