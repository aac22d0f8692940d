package analytics

import (
	"reflect"
	"testing"
)

func TestIsStopword(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"the", true},
		{"The", true},
		{"WOULD", true},
		{"gopher", false},
		{"click", true},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsStopword(tt.word); got != tt.want {
			t.Errorf("IsStopword(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestWordFrequency(t *testing.T) {
	counts := WordFrequency("Gopher, gopher! The compiler's... compiler-flags 2x")

	if got := counts["gopher"]; got != 2 {
		t.Errorf("gopher = %d, want 2 (punctuation and case folded)", got)
	}
	if _, ok := counts["the"]; ok {
		t.Error("stopwords should be filtered")
	}
	// Interior punctuation stays; only the edges are trimmed.
	if got := counts["compiler's"]; got != 1 {
		t.Errorf("compiler's = %d, want 1", got)
	}
	if got := counts["2x"]; got != 1 {
		t.Errorf("2x = %d, want 1", got)
	}
}

func TestTopN(t *testing.T) {
	counts := map[string]int{"beta": 3, "alpha": 3, "gamma": 5, "delta": 1}

	got := TopN(counts, 3)
	// Ties break lexicographically so output is stable.
	want := []string{"gamma:5", "alpha:3", "beta:3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopN = %v, want %v", got, want)
	}

	if got := TopN(counts, 10); len(got) != 4 {
		t.Errorf("TopN over-ask = %d entries, want 4", len(got))
	}
	if got := TopN(counts, 0); len(got) != 0 {
		t.Errorf("TopN(0) = %v, want empty", got)
	}
	if got := TopN(nil, 3); len(got) != 0 {
		t.Errorf("TopN(nil) = %v, want empty", got)
	}
}
