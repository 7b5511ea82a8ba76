package heuristics

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-study-buddy/models"
)

const (
	minFlashcards      = 4
	maxFlashcards      = 6
	maxStepCards       = 3
	maxBackSentenceLen = 100
	minStepSentenceLen = 10
)

// Flashcards builds four to six cards: one per key term, up to three process
// steps, then generic review cards.
func Flashcards(text string) []models.Flashcard {
	topic := MainTopic(text)
	sentences := splitSentences(text, 0)
	cards := make([]models.Flashcard, 0, maxFlashcards+maxStepCards)

	for _, term := range KeyTerms(text) {
		cards = append(cards, models.Flashcard{
			Front: term,
			Back:  termDefinition(term, topic, sentences),
		})
	}

	if HasProcessIndicators(text) {
		step := 0
		for _, s := range sentences {
			if step == maxStepCards {
				break
			}
			if len([]rune(s.text)) <= minStepSentenceLen || !containsAnyToken(s.text, processIndicators) {
				continue
			}
			step++
			cards = append(cards, models.Flashcard{
				Front: fmt.Sprintf("Step %d", step),
				Back:  s.text + ".",
			})
		}
	}

	for _, generic := range genericFlashcards(topic) {
		if len(cards) >= minFlashcards {
			break
		}
		cards = append(cards, generic)
	}

	if len(cards) > maxFlashcards {
		cards = cards[:maxFlashcards]
	}
	return cards
}

func termDefinition(term, topic string, sentences []sentence) string {
	lowerTerm := strings.ToLower(term)
	for _, s := range sentences {
		if len([]rune(s.text)) < maxBackSentenceLen && strings.Contains(strings.ToLower(s.text), lowerTerm) {
			return s.text + "."
		}
	}
	return fmt.Sprintf("%s is an important concept related to %s.", term, topic)
}

func genericFlashcards(topic string) []models.Flashcard {
	return []models.Flashcard{
		{Front: "What is the main topic?", Back: fmt.Sprintf("The main topic is %s.", topic)},
		{Front: "Why is this topic important?", Back: fmt.Sprintf("Understanding %s builds a foundation for related subjects.", topic)},
		{Front: "How can you apply this knowledge?", Back: "Connect the ideas to real examples and explain them in your own words."},
		{Front: "What should you review next?", Back: "Revisit the key points and test yourself with the quiz questions."},
	}
}
