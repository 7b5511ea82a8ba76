package heuristics

import (
	"regexp"
	"strings"
	"unicode"
)

var sentenceSplitter = regexp.MustCompile(`[.!?]+`)

// sentence is a trimmed sentence with its index among the kept sentences.
type sentence struct {
	text     string
	position int
}

// splitSentences splits text on terminators and keeps trimmed sentences
// longer than minLen characters.
func splitSentences(text string, minLen int) []sentence {
	parts := sentenceSplitter.Split(text, -1)
	out := make([]sentence, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len([]rune(p)) <= minLen {
			continue
		}
		out = append(out, sentence{text: p, position: len(out)})
	}
	return out
}

// tokenize lowercases text and strips every non-alphanumeric rune from each
// whitespace-separated word. Empty tokens are dropped.
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		t := strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return r
			}
			return -1
		}, f)
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimSpace(string(runes[:n])) + "..."
}

func containsAnyToken(text string, words map[string]struct{}) bool {
	for _, t := range tokenize(text) {
		if _, ok := words[t]; ok {
			return true
		}
	}
	return false
}

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

var topicStopwords = set(
	"about", "above", "after", "again", "against", "along", "already", "also",
	"although", "among", "another", "because", "before", "being", "below",
	"between", "both", "could", "does", "doing", "during", "each", "either",
	"every", "first", "from", "further", "have", "having", "here", "however",
	"into", "itself", "many", "might", "more", "most", "much", "must", "never",
	"often", "other", "others", "over", "same", "several", "should", "since",
	"some", "still", "such", "than", "that", "their", "theirs", "them",
	"themselves", "then", "there", "therefore", "these", "they", "thing",
	"things", "this", "those", "through", "under", "until", "upon", "used",
	"using", "very", "what", "when", "where", "whether", "which", "while",
	"with", "within", "without", "would", "your", "yours",
)

var termStopwords = set(
	"because", "between", "another", "without", "through", "however",
	"therefore", "although", "whether", "something", "everything",
	"anything", "including", "different", "example", "examples",
	"important", "themselves", "yourself", "usually", "generally",
)

var importantKeywords = set(
	"important", "key", "main", "primary", "essential", "crucial",
	"significant", "fundamental", "major", "central", "critical", "vital",
	"principle", "concept", "core",
)

var processIndicators = set(
	"first", "then", "next", "finally", "step", "steps", "process",
	"stage", "stages", "phase", "phases", "procedure",
)

var definitionPattern = regexp.MustCompile(
	`(?i)\b(is|are) (a|an|the)\b|\b(refers? to|means|defined as|known as|consists? of)\b`,
)

// HasProcessIndicators reports whether text describes a sequence of steps.
func HasProcessIndicators(text string) bool {
	return containsAnyToken(text, processIndicators)
}
