package playerrecord

import "testing"

func TestRecordMetric(t *testing.T) {
	t.Parallel()

	avg := 2.5
	rec := Record{Points: 12, Stalwart: 8, Pub: 3, Averages: &avg}

	if v, ok := rec.Metric(TableKindPoints); !ok || v != 12 {
		t.Fatalf("points metric: v=%v ok=%t", v, ok)
	}
	if v, ok := rec.Metric(TableKindAverages); !ok || v != 2.5 {
		t.Fatalf("averages metric: v=%v ok=%t", v, ok)
	}
	if _, ok := rec.Metric(TableKindSpeedy); ok {
		t.Fatal("speedy without replies must have no metric")
	}
	if _, ok := rec.Metric(TableKind("bogus")); ok {
		t.Fatal("unknown kind must have no metric")
	}
}

func TestRecordQualifies(t *testing.T) {
	t.Parallel()

	rec := Record{AveragesQualifies: false, SpeedyQualifies: true}

	if rec.Qualifies(TableKindAverages) {
		t.Fatal("averages must follow its captured flag")
	}
	if !rec.Qualifies(TableKindSpeedy) {
		t.Fatal("speedy must follow its captured flag")
	}
	// Counting tables have no threshold.
	for _, kind := range []TableKind{TableKindPoints, TableKindStalwart, TableKindPub} {
		if !rec.Qualifies(kind) {
			t.Fatalf("%s must always qualify", kind)
		}
	}
	if rec.Qualifies(TableKind("bogus")) {
		t.Fatal("unknown kind must not qualify")
	}
}

func TestRecordRankAccessors(t *testing.T) {
	t.Parallel()

	var rec Record
	for _, kind := range AllTableKinds() {
		rank := 3
		rec.SetRank(kind, &rank)
		if got := rec.Rank(kind); got == nil || *got != 3 {
			t.Fatalf("%s: rank not stored", kind)
		}
		rec.SetRank(kind, nil)
		if rec.Rank(kind) != nil {
			t.Fatalf("%s: rank not cleared", kind)
		}
	}
}
