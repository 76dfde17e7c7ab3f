package adocint

import (
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// LanguageStat summarizes the detections for one locale
type LanguageStat struct {
	Locale         string  // BCP-47 locale as reported by the service
	Name           string  // Human-readable language name
	Spans          int     // Number of text spans detected in this locale
	BestConfidence float64 // Highest confidence among those detections
}

// SummarizeLanguages aggregates per-span language detections into one
// entry per locale, sorted by span count descending
func SummarizeLanguages(languages []Language) []LanguageStat {
	byLocale := make(map[string]*LanguageStat)
	for _, lang := range languages {
		stat, ok := byLocale[lang.Locale]
		if !ok {
			stat = &LanguageStat{
				Locale: lang.Locale,
				Name:   localeName(lang.Locale),
			}
			byLocale[lang.Locale] = stat
		}
		stat.Spans += len(lang.Spans)
		if lang.Confidence > stat.BestConfidence {
			stat.BestConfidence = lang.Confidence
		}
	}

	result := make([]LanguageStat, 0, len(byLocale))
	for _, stat := range byLocale {
		result = append(result, *stat)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Spans != result[j].Spans {
			return result[i].Spans > result[j].Spans
		}
		return result[i].Locale < result[j].Locale
	})
	return result
}

// localeName resolves a BCP-47 tag to its English display name,
// falling back to the raw locale when the tag does not parse
func localeName(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return locale
	}
	return display.English.Languages().Name(tag)
}
