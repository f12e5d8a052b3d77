package playerrecord

import "context"

// Repository stores derived records. The aggregation engine is the only
// writer; everything else reads.
type Repository interface {
	Get(ctx context.Context, playerID string, year int) (Record, bool, error)
	ListByYear(ctx context.Context, year int) ([]Record, error)
	// ListYears returns the ascending set of years that have at least one
	// record, optionally including AllTimeYear.
	ListYears(ctx context.Context, includeAllTime bool) ([]int, error)
	// ReplaceByYear swaps the full record set for one scope. Each record is a
	// single-row replace, so concurrent readers observe either the old or the
	// new row, never a torn one.
	ReplaceByYear(ctx context.Context, year int, records []Record) error
	DeleteAll(ctx context.Context) error
}
