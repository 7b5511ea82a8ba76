package heuristics

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-study-buddy/models"
)

const (
	minQuizItems = 2
	maxQuizItems = 3
	quizOptions  = 4
)

// topicDistractors maps a lowercased topic to plausible wrong answers.
var topicDistractors = map[string][]string{
	"learning":    {"Teaching Methods", "Memory Techniques", "Study Habits"},
	"machine":     {"Industrial Design", "Mechanical Engineering", "Robotics Hardware"},
	"biology":     {"Chemistry", "Geology", "Astronomy"},
	"history":     {"Geography", "Economics", "Philosophy"},
	"economics":   {"Sociology", "Political Science", "Accounting"},
	"physics":     {"Chemistry", "Biology", "Mathematics"},
	"chemistry":   {"Physics", "Biology", "Geology"},
	"cells":       {"Atoms", "Molecules", "Tissues"},
	"energy":      {"Matter", "Momentum", "Pressure"},
	"programming": {"Hardware Design", "Network Cabling", "Graphic Design"},
	"computer":    {"Calculator", "Typewriter", "Telephone"},
	"science":     {"Art", "Literature", "Music"},
}

var genericDistractors = []string{
	"Historical Events", "Mathematical Formulas", "Literary Analysis",
	"Geographical Features", "Musical Theory", "Sports Statistics",
}

var termDistractors = []string{
	"Quantum Entanglement", "Renaissance Architecture", "Plate Tectonics",
	"Baroque Music", "Medieval Poetry", "Ocean Currents",
}

// Quiz builds two or three multiple-choice questions from text.
// The correct answer is always the first option.
func Quiz(text string) []models.QuizItem {
	topic := MainTopic(text)
	items := make([]models.QuizItem, 0, maxQuizItems)

	items = append(items, models.QuizItem{
		Question:     "What is the main topic discussed in this text?",
		Options:      buildOptions(topic, lookupDistractors(topic), text),
		CorrectIndex: 0,
		Explanation:  fmt.Sprintf("The text focuses on %s, which is the most frequently discussed concept.", topic),
	})

	term := KeyTerms(text)[0]
	items = append(items, models.QuizItem{
		Question:     "Which of the following terms is discussed in the text?",
		Options:      buildOptions(term, termDistractors, text),
		CorrectIndex: 0,
		Explanation:  fmt.Sprintf("%s is one of the key terms of this material.", term),
	})

	if HasProcessIndicators(text) {
		items = append(items, models.QuizItem{
			Question: "How does the text present its content?",
			Options: []string{
				"As a sequence of steps or stages",
				"As a list of unrelated facts",
				"As a personal narrative",
				"As a debate between opinions",
			},
			CorrectIndex: 0,
			Explanation:  "The text uses sequence words such as first, next or finally to describe a process.",
		})
	}

	for len(items) < minQuizItems {
		items = append(items, models.QuizItem{
			Question: "What is the primary purpose of this educational content?",
			Options: []string{
				fmt.Sprintf("To explain and inform about %s", topic),
				"To entertain with a fictional story",
				"To advertise a commercial product",
				"To share personal opinions only",
			},
			CorrectIndex: 0,
			Explanation:  "Educational content is written to explain a subject to the reader.",
		})
	}

	if len(items) > maxQuizItems {
		items = items[:maxQuizItems]
	}
	return items
}

func lookupDistractors(topic string) []string {
	if d, ok := topicDistractors[strings.ToLower(topic)]; ok {
		return append(append([]string{}, d...), genericDistractors...)
	}
	return genericDistractors
}

// buildOptions returns the correct answer followed by three distinct
// distractors that are absent from the source text.
func buildOptions(correct string, pool []string, text string) []string {
	lowerText := strings.ToLower(text)
	options := make([]string, 0, quizOptions)
	options = append(options, correct)
	seen := map[string]struct{}{strings.ToLower(correct): {}}

	add := func(candidates []string, checkText bool) {
		for _, c := range candidates {
			if len(options) == quizOptions {
				return
			}
			key := strings.ToLower(c)
			if _, dup := seen[key]; dup {
				continue
			}
			if checkText && strings.Contains(lowerText, key) {
				continue
			}
			seen[key] = struct{}{}
			options = append(options, c)
		}
	}

	add(pool, true)
	add(genericDistractors, true)
	add(genericDistractors, false)
	add(termDistractors, false)
	return options
}
