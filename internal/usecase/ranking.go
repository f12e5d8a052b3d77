package usecase

import (
	"sort"

	"github.com/footyclub/records/internal/domain/playerrecord"
)

type rankEntry struct {
	idx    int
	metric float64
}

func sortEntries(kind playerrecord.TableKind, entries []rankEntry, records []playerrecord.Record) {
	ascending := kind.Ascending()
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].metric != entries[j].metric {
			if ascending {
				return entries[i].metric < entries[j].metric
			}
			return entries[i].metric > entries[j].metric
		}
		return records[entries[i].idx].PlayerID < records[entries[j].idx].PlayerID
	})
}

// assignDenseRanks walks metric-sorted entries and gives tied values the same
// rank; the next distinct value gets the previous rank plus one, so tie
// groups never create gaps.
func assignDenseRanks(kind playerrecord.TableKind, entries []rankEntry, records []playerrecord.Record) {
	rank := 0
	var last float64
	for i, e := range entries {
		if i == 0 || e.metric != last {
			rank++
			last = e.metric
		}
		r := rank
		records[e.idx].SetRank(kind, &r)
	}
}

// applyRanks persists dense ranks for every table kind onto one scope's
// record set. A record is ranked in a table when its metric exists and it
// qualifies for that table; everything else gets a nil rank.
func applyRanks(records []playerrecord.Record) {
	for _, kind := range playerrecord.AllTableKinds() {
		entries := make([]rankEntry, 0, len(records))
		for i := range records {
			records[i].SetRank(kind, nil)
			metric, ok := records[i].Metric(kind)
			if !ok || !records[i].Qualifies(kind) {
				continue
			}
			entries = append(entries, rankEntry{idx: i, metric: metric})
		}
		sortEntries(kind, entries, records)
		assignDenseRanks(kind, entries, records)
	}
}

// rankTable builds the unqualified view of one table: every record with a
// metric value, freshly dense-ranked regardless of qualification. The input
// records are not mutated.
func rankTable(kind playerrecord.TableKind, records []playerrecord.Record) []playerrecord.Record {
	rows := make([]playerrecord.Record, 0, len(records))
	for _, rec := range records {
		if _, ok := rec.Metric(kind); ok {
			rows = append(rows, rec)
		}
	}

	entries := make([]rankEntry, len(rows))
	for i := range rows {
		metric, _ := rows[i].Metric(kind)
		entries[i] = rankEntry{idx: i, metric: metric}
	}
	sortEntries(kind, entries, rows)
	assignDenseRanks(kind, entries, rows)

	ordered := make([]playerrecord.Record, len(entries))
	for i, e := range entries {
		ordered[i] = rows[e.idx]
	}
	return ordered
}
