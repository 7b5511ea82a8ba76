package heuristics

import (
	"math"
	"sort"
	"strings"

	"github.com/MKhiriev/go-study-buddy/models"
)

const (
	minKeyPointSentenceLen = 15
	maxKeyPoints           = 5
	sparseKeyPointLen      = 200
)

type scoredSentence struct {
	sentence
	score float64
}

// scoreKeyPoint rates a sentence for inclusion as a key point.
func scoreKeyPoint(s sentence) float64 {
	score := math.Min(float64(len([]rune(s.text)))/50, 3)
	if containsAnyToken(s.text, importantKeywords) {
		score += 2
	}
	if definitionPattern.MatchString(s.text) {
		score += 2
	}
	score += math.Max(0, float64(10-s.position)/5)
	return score
}

// KeyPoints selects up to five top-scoring sentences and returns them in
// their original order, numbered from 1.
func KeyPoints(text string) []models.KeyPoint {
	sentences := splitSentences(text, minKeyPointSentenceLen)
	if len(sentences) == 0 {
		return []models.KeyPoint{{ID: 1, Point: truncate(strings.TrimSpace(text), sparseKeyPointLen)}}
	}

	scored := make([]scoredSentence, len(sentences))
	for i, s := range sentences {
		scored[i] = scoredSentence{sentence: s, score: scoreKeyPoint(s)}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	if len(scored) > maxKeyPoints {
		scored = scored[:maxKeyPoints]
	}
	sort.Slice(scored, func(i, j int) bool { return scored[i].position < scored[j].position })

	points := make([]models.KeyPoint, len(scored))
	for i, s := range scored {
		points[i] = models.KeyPoint{ID: i + 1, Point: s.text}
	}
	return points
}
