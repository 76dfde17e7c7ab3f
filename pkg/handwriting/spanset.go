package handwriting

import (
	"fmt"
	"sort"
)

// MalformedSpanError reports a span with a negative offset or a
// non-positive length, rejected during SpanSet construction
type MalformedSpanError struct {
	Span Span
}

func (e *MalformedSpanError) Error() string {
	return fmt.Sprintf("malformed span: offset=%d length=%d", e.Span.Offset, e.Span.Length)
}

// SpanSet answers coverage queries for a fixed collection of spans.
// It stores the input coalesced into sorted disjoint intervals, so a
// query costs O(log n + k) rather than scanning every covered offset.
// A SpanSet is never mutated after BuildSpanSet and is safe for
// concurrent readers.
type SpanSet struct {
	intervals []Span // Sorted by offset, pairwise disjoint, non-adjacent
}

// BuildSpanSet merges the input spans into a minimal set of disjoint
// sorted intervals. Overlapping or adjacent spans are coalesced.
// Empty input yields an empty set. A span with a negative offset or a
// non-positive length aborts construction with MalformedSpanError.
func BuildSpanSet(spans []Span) (SpanSet, error) {
	for _, s := range spans {
		if s.Offset < 0 || s.Length <= 0 {
			return SpanSet{}, &MalformedSpanError{Span: s}
		}
	}
	if len(spans) == 0 {
		return SpanSet{}, nil
	}

	sorted := make([]Span, len(spans))
	copy(sorted, spans)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	merged := make([]Span, 0, len(sorted))
	current := sorted[0]
	for _, s := range sorted[1:] {
		if s.Offset <= current.End() {
			// Overlapping or adjacent, extend the current interval
			if s.End() > current.End() {
				current.Length = s.End() - current.Offset
			}
			continue
		}
		merged = append(merged, current)
		current = s
	}
	merged = append(merged, current)

	return SpanSet{intervals: merged}, nil
}

// CountOverlap returns the number of offsets in query that fall inside
// any stored interval
func (ss SpanSet) CountOverlap(query Span) int {
	if query.Length <= 0 || len(ss.intervals) == 0 {
		return 0
	}

	// First interval that ends after the query start
	i := sort.Search(len(ss.intervals), func(i int) bool {
		return ss.intervals[i].End() > query.Offset
	})

	count := 0
	for ; i < len(ss.intervals) && ss.intervals[i].Offset < query.End(); i++ {
		start := max(ss.intervals[i].Offset, query.Offset)
		end := min(ss.intervals[i].End(), query.End())
		count += end - start
	}
	return count
}

// Contains reports whether a single offset is covered
func (ss SpanSet) Contains(offset int) bool {
	return ss.CountOverlap(Span{Offset: offset, Length: 1}) > 0
}

// Covered returns the total number of distinct offsets in the set
func (ss SpanSet) Covered() int {
	total := 0
	for _, iv := range ss.intervals {
		total += iv.Length
	}
	return total
}
