package playerrecord

// TableKind identifies one of the five competing league tables.
type TableKind string

const (
	TableKindPoints   TableKind = "points"
	TableKindAverages TableKind = "averages"
	TableKindStalwart TableKind = "stalwart"
	TableKindSpeedy   TableKind = "speedy"
	TableKindPub      TableKind = "pub"
)

var allTableKinds = []TableKind{
	TableKindPoints,
	TableKindAverages,
	TableKindStalwart,
	TableKindSpeedy,
	TableKindPub,
}

// AllTableKinds returns every table kind in declaration order.
func AllTableKinds() []TableKind {
	out := make([]TableKind, len(allTableKinds))
	copy(out, allTableKinds)
	return out
}

// ParseTableKind maps a wire value onto the closed enum.
func ParseTableKind(raw string) (TableKind, bool) {
	kind := TableKind(raw)
	return kind, kind.Valid()
}

func (k TableKind) Valid() bool {
	switch k {
	case TableKindPoints, TableKindAverages, TableKindStalwart, TableKindSpeedy, TableKindPub:
		return true
	default:
		return false
	}
}

// Ascending reports the sort direction for the kind's metric. Only speedy
// sorts ascending: a lower average response time is better.
func (k TableKind) Ascending() bool {
	return k == TableKindSpeedy
}

func (k TableKind) String() string {
	return string(k)
}
