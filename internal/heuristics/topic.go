package heuristics

const (
	DefaultTopic = "Learning Concepts"

	minTopicTokenLen = 5
	minTermLen       = 7
	maxKeyTerms      = 4
)

// GenericKeyTerms is returned by KeyTerms when the text is too sparse.
var GenericKeyTerms = []string{"Concept", "Theory", "Application", "Method"}

// MainTopic returns the most frequent meaningful token of text, capitalized.
// Ties go to the token seen first.
func MainTopic(text string) string {
	counts := make(map[string]int)
	var order []string
	for _, t := range tokenize(text) {
		if len([]rune(t)) < minTopicTokenLen {
			continue
		}
		if _, stop := topicStopwords[t]; stop {
			continue
		}
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}

	best, bestCount := "", 0
	for _, t := range order {
		if counts[t] > bestCount {
			best, bestCount = t, counts[t]
		}
	}
	if best == "" {
		return DefaultTopic
	}
	return capitalize(best)
}

// KeyTerms returns the first four long, distinct, alphabetic terms of text,
// capitalized. When fewer than four qualify, GenericKeyTerms is returned.
func KeyTerms(text string) []string {
	terms := candidateTerms(text)
	if len(terms) < maxKeyTerms {
		out := make([]string, len(GenericKeyTerms))
		copy(out, GenericKeyTerms)
		return out
	}
	return terms
}

// candidateTerms returns up to four terms actually found in text.
func candidateTerms(text string) []string {
	seen := make(map[string]struct{})
	terms := make([]string, 0, maxKeyTerms)
	for _, t := range tokenize(text) {
		if len([]rune(t)) < minTermLen || !isAlphabetic(t) {
			continue
		}
		if _, stop := termStopwords[t]; stop {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		terms = append(terms, capitalize(t))
		if len(terms) == maxKeyTerms {
			break
		}
	}
	return terms
}
