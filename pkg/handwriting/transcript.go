package handwriting

// BuildTranscript reconstructs the handwritten-only text of a page.
// Words verdicted Handwritten are collected in document order, joined
// with single spaces, and greedily wrapped into lines of at most
// maxLineWidth characters. Breaks happen only at word boundaries; a
// single word longer than maxLineWidth gets its own line rather than
// being split. A page with no handwritten words yields an empty slice.
func BuildTranscript(page *Page, verdicts map[*Word]Verdict, maxLineWidth int) []string {
	var lines []string
	current := ""
	for _, w := range page.Words {
		if verdicts[w] != Handwritten {
			continue
		}
		if current == "" {
			current = w.Content
			continue
		}
		if len(current)+1+len(w.Content) > maxLineWidth {
			lines = append(lines, current)
			current = w.Content
		} else {
			current += " " + w.Content
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
