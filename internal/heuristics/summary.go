package heuristics

import (
	"sort"
	"strings"
)

// SummaryMarker is appended to every locally generated summary.
const SummaryMarker = " [Generated by local text analysis]"

const (
	minSummarySentenceLen = 10
	summarySentences      = 4
	sparseSummaryLen      = 200
)

// Summarize builds an extractive summary: the four best sentences ranked by
// keyword presence, then length, then position, restored to text order.
func Summarize(text string) string {
	sentences := splitSentences(text, minSummarySentenceLen)
	if len(sentences) == 0 {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return "No content available to summarize." + SummaryMarker
		}
		return truncate(trimmed, sparseSummaryLen) + SummaryMarker
	}

	ranked := make([]sentence, len(sentences))
	copy(ranked, sentences)
	sort.SliceStable(ranked, func(i, j int) bool {
		ki := containsAnyToken(ranked[i].text, importantKeywords)
		kj := containsAnyToken(ranked[j].text, importantKeywords)
		if ki != kj {
			return ki
		}
		li, lj := len(ranked[i].text), len(ranked[j].text)
		if li != lj {
			return li > lj
		}
		return ranked[i].position < ranked[j].position
	})

	if len(ranked) > summarySentences {
		ranked = ranked[:summarySentences]
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].position < ranked[j].position })

	parts := make([]string, len(ranked))
	for i, s := range ranked {
		parts[i] = s.text
	}
	return strings.Join(parts, ". ") + "." + SummaryMarker
}
