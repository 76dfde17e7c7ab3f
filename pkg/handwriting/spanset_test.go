package handwriting

import (
	"errors"
	"testing"
)

func TestBuildSpanSetCoalesces(t *testing.T) {
	tests := []struct {
		name    string
		spans   []Span
		want    []Span
		covered int
	}{
		{
			name:    "empty input",
			spans:   nil,
			want:    nil,
			covered: 0,
		},
		{
			name:    "single span",
			spans:   []Span{{0, 10}},
			want:    []Span{{0, 10}},
			covered: 10,
		},
		{
			name:    "overlapping spans merge",
			spans:   []Span{{0, 10}, {5, 10}},
			want:    []Span{{0, 15}},
			covered: 15,
		},
		{
			name:    "adjacent spans merge",
			spans:   []Span{{0, 5}, {5, 5}},
			want:    []Span{{0, 10}},
			covered: 10,
		},
		{
			name:    "disjoint spans stay separate",
			spans:   []Span{{0, 5}, {10, 5}},
			want:    []Span{{0, 5}, {10, 5}},
			covered: 10,
		},
		{
			name:    "unsorted input",
			spans:   []Span{{20, 5}, {0, 5}, {10, 5}},
			want:    []Span{{0, 5}, {10, 5}, {20, 5}},
			covered: 15,
		},
		{
			name:    "contained span absorbed",
			spans:   []Span{{0, 20}, {5, 5}},
			want:    []Span{{0, 20}},
			covered: 20,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ss, err := BuildSpanSet(tc.spans)
			if err != nil {
				t.Fatalf("BuildSpanSet: %v", err)
			}
			if len(ss.intervals) != len(tc.want) {
				t.Fatalf("got %d intervals, want %d: %v", len(ss.intervals), len(tc.want), ss.intervals)
			}
			for i, iv := range ss.intervals {
				if iv != tc.want[i] {
					t.Errorf("interval %d: got %v, want %v", i, iv, tc.want[i])
				}
			}
			if got := ss.Covered(); got != tc.covered {
				t.Errorf("Covered: got %d, want %d", got, tc.covered)
			}
		})
	}
}

func TestBuildSpanSetRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		span Span
	}{
		{"negative offset", Span{-1, 5}},
		{"zero length", Span{0, 0}},
		{"negative length", Span{3, -2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildSpanSet([]Span{{0, 5}, tc.span})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var malformed *MalformedSpanError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedSpanError, got %T: %v", err, err)
			}
			if malformed.Span != tc.span {
				t.Errorf("error reports span %v, want %v", malformed.Span, tc.span)
			}
		})
	}
}

func TestCountOverlap(t *testing.T) {
	ss, err := BuildSpanSet([]Span{{0, 10}, {20, 10}, {40, 10}})
	if err != nil {
		t.Fatalf("BuildSpanSet: %v", err)
	}

	tests := []struct {
		name  string
		query Span
		want  int
	}{
		{"fully inside first interval", Span{2, 5}, 5},
		{"exact interval match", Span{0, 10}, 10},
		{"partial overlap at start", Span{8, 5}, 2},
		{"in a gap", Span{12, 5}, 0},
		{"straddles gap into second interval", Span{15, 10}, 5},
		{"covers two intervals and a gap", Span{5, 20}, 10},
		{"covers everything", Span{0, 100}, 30},
		{"before all intervals", Span{0, 0}, 0},
		{"after all intervals", Span{60, 10}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ss.CountOverlap(tc.query); got != tc.want {
				t.Errorf("CountOverlap(%v) = %d, want %d", tc.query, got, tc.want)
			}
		})
	}
}

// TestCountOverlapMatchesNaive checks the interval representation
// against a per-offset set built from the same raw spans.
func TestCountOverlapMatchesNaive(t *testing.T) {
	raw := []Span{{3, 7}, {0, 4}, {15, 1}, {10, 6}, {30, 5}, {32, 10}, {8, 2}}

	naive := make(map[int]bool)
	for _, s := range raw {
		for o := s.Offset; o < s.End(); o++ {
			naive[o] = true
		}
	}

	ss, err := BuildSpanSet(raw)
	if err != nil {
		t.Fatalf("BuildSpanSet: %v", err)
	}

	if got := ss.CountOverlap(Span{0, 50}); got != len(naive) {
		t.Errorf("full-range CountOverlap = %d, want %d distinct offsets", got, len(naive))
	}

	for offset := 0; offset < 50; offset++ {
		if got := ss.Contains(offset); got != naive[offset] {
			t.Errorf("Contains(%d) = %v, want %v", offset, got, naive[offset])
		}
	}
}
