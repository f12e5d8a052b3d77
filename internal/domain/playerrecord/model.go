package playerrecord

// AllTimeYear is the reserved scope covering every season.
const AllTimeYear = 0

// Record is the engine's derived entity: one player's aggregated numbers for
// one scope (a calendar year, or AllTimeYear). Records own no independent
// state; they are safe to delete and rebuild from outcomes at any time.
type Record struct {
	PlayerID string
	Year     int

	Played int
	Won    int
	Drawn  int
	Lost   int

	Points int
	// Averages is Points/Played, nil when the player played no games in the
	// scope.
	Averages *float64
	Stalwart int
	// Speedy is the mean response interval in seconds, nil when no reply with
	// a recorded interval exists in the scope.
	Speedy *float64
	Pub    int

	// Qualification flags are captured at aggregation time, not recomputed on
	// read. Points, stalwart and pub tables have no threshold.
	AveragesQualifies bool
	SpeedyQualifies   bool

	RankPoints   *int
	RankAverages *int
	RankStalwart *int
	RankSpeedy   *int
	RankPub      *int
}

// Metric returns the record's value for the given table, and whether the
// value exists. Averages and speedy are nil-able; the counting tables always
// carry a value once a record exists.
func (r Record) Metric(kind TableKind) (float64, bool) {
	switch kind {
	case TableKindPoints:
		return float64(r.Points), true
	case TableKindAverages:
		if r.Averages == nil {
			return 0, false
		}
		return *r.Averages, true
	case TableKindStalwart:
		return float64(r.Stalwart), true
	case TableKindSpeedy:
		if r.Speedy == nil {
			return 0, false
		}
		return *r.Speedy, true
	case TableKindPub:
		return float64(r.Pub), true
	default:
		return 0, false
	}
}

// Qualifies reports whether the record counts toward the qualified view of
// the given table.
func (r Record) Qualifies(kind TableKind) bool {
	switch kind {
	case TableKindAverages:
		return r.AveragesQualifies
	case TableKindSpeedy:
		return r.SpeedyQualifies
	default:
		return kind.Valid()
	}
}

// Rank returns the persisted rank for the given table, nil when the record
// is not ranked in that table.
func (r Record) Rank(kind TableKind) *int {
	switch kind {
	case TableKindPoints:
		return r.RankPoints
	case TableKindAverages:
		return r.RankAverages
	case TableKindStalwart:
		return r.RankStalwart
	case TableKindSpeedy:
		return r.RankSpeedy
	case TableKindPub:
		return r.RankPub
	default:
		return nil
	}
}

// SetRank stores a rank for the given table.
func (r *Record) SetRank(kind TableKind, rank *int) {
	switch kind {
	case TableKindPoints:
		r.RankPoints = rank
	case TableKindAverages:
		r.RankAverages = rank
	case TableKindStalwart:
		r.RankStalwart = rank
	case TableKindSpeedy:
		r.RankSpeedy = rank
	case TableKindPub:
		r.RankPub = rank
	}
}
