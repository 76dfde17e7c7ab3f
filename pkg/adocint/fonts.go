package adocint

// FontStyle is one distinct font appearance observed in the document
type FontStyle struct {
	Family     string  // Closest matching font family
	Weight     string  // e.g. "normal", "bold"
	Style      string  // e.g. "normal", "italic"
	Confidence float64
}

// DistinctFontStyles collects the unique (family, weight, style)
// combinations from styles that carry font information. Styles with no
// font attributes at all are skipped.
func DistinctFontStyles(styles []Style) []FontStyle {
	type key struct{ family, weight, style string }
	seen := make(map[key]bool)

	var result []FontStyle
	for _, s := range styles {
		if s.FontStyle == "" && s.FontWeight == "" && s.SimilarFontFamily == "" {
			continue
		}
		fs := FontStyle{
			Family:     orDefault(s.SimilarFontFamily, "unknown"),
			Weight:     orDefault(s.FontWeight, "normal"),
			Style:      orDefault(s.FontStyle, "normal"),
			Confidence: s.Confidence,
		}
		k := key{fs.Family, fs.Weight, fs.Style}
		if seen[k] {
			continue
		}
		seen[k] = true
		result = append(result, fs)
	}
	return result
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
