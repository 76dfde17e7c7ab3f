package handwriting

// summarizePage counts verdicts and averages word confidence for one
// page. The verdicts slice is parallel to page.Words.
func summarizePage(page *Page, verdicts []Verdict) PageStats {
	stats := PageStats{
		PageNumber: page.Number,
		Words:      len(page.Words),
	}
	confSum := 0.0
	for i, w := range page.Words {
		confSum += w.Confidence
		switch verdicts[i] {
		case Handwritten:
			stats.HandwrittenWords++
		case Printed:
			stats.PrintedWords++
		default:
			stats.UnknownWords++
		}
	}
	if stats.Words > 0 {
		stats.MeanConfidence = confSum / float64(stats.Words)
	}
	return stats
}

// summarizeDocument rolls page stats up to document totals. The mean
// confidence is recomputed over the flattened word list so pages with
// unequal word counts do not skew it.
func summarizeDocument(doc *Document, pages []PageResult) DocumentStats {
	stats := DocumentStats{Pages: len(doc.Pages)}
	for _, pr := range pages {
		stats.Words += pr.Stats.Words
		stats.HandwrittenWords += pr.Stats.HandwrittenWords
		stats.PrintedWords += pr.Stats.PrintedWords
		stats.UnknownWords += pr.Stats.UnknownWords
	}

	confSum := 0.0
	for _, page := range doc.Pages {
		for _, w := range page.Words {
			confSum += w.Confidence
		}
	}
	if stats.Words > 0 {
		stats.MeanConfidence = confSum / float64(stats.Words)
	}
	return stats
}
