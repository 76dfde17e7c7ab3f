package handwriting

import "fmt"

// IndexStyles partitions a document's style annotations into handwritten
// and printed offset coverage. Annotations classified Unknown assert
// neither handwriting nor its absence and contribute to neither set.
// The two sets may cover overlapping offsets when the recognizer emits
// conflicting signals; conflicts are resolved per word in ClassifyWord,
// not here.
func IndexStyles(styles []StyleAnnotation) (handwritten, printed SpanSet, err error) {
	var hwSpans, prSpans []Span
	for _, style := range styles {
		switch style.Classification {
		case Handwritten:
			hwSpans = append(hwSpans, style.Spans...)
		case Printed:
			prSpans = append(prSpans, style.Spans...)
		}
	}

	handwritten, err = BuildSpanSet(hwSpans)
	if err != nil {
		return SpanSet{}, SpanSet{}, fmt.Errorf("indexing handwritten styles: %w", err)
	}
	printed, err = BuildSpanSet(prSpans)
	if err != nil {
		return SpanSet{}, SpanSet{}, fmt.Errorf("indexing printed styles: %w", err)
	}
	return handwritten, printed, nil
}
