package playerrecord

import "testing"

func TestParseTableKind(t *testing.T) {
	t.Parallel()

	for _, kind := range AllTableKinds() {
		parsed, ok := ParseTableKind(string(kind))
		if !ok || parsed != kind {
			t.Fatalf("round-trip failed for %q", kind)
		}
	}

	if _, ok := ParseTableKind("bogus"); ok {
		t.Fatal("bogus must not parse")
	}
	if _, ok := ParseTableKind(""); ok {
		t.Fatal("empty string must not parse")
	}
}

func TestAscending(t *testing.T) {
	t.Parallel()

	for _, kind := range AllTableKinds() {
		want := kind == TableKindSpeedy
		if got := kind.Ascending(); got != want {
			t.Fatalf("%s: ascending=%t want=%t", kind, got, want)
		}
	}
}
