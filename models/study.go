package models

import "time"

// Feature names a study artifact that can be generated from a text.
type Feature string

const (
	FeatureSummary    Feature = "summary"
	FeatureQuiz       Feature = "quiz"
	FeatureFlashcards Feature = "flashcards"
	FeatureKeyPoints  Feature = "keyPoints"
)

// AllFeatures lists every supported feature in canonical order.
var AllFeatures = []Feature{FeatureSummary, FeatureQuiz, FeatureFlashcards, FeatureKeyPoints}

// InputType describes where the processed text came from.
type InputType string

const (
	InputTypeText     InputType = "text"
	InputTypeDocument InputType = "document"
	InputTypePDF      InputType = "pdf"
	InputTypeAudio    InputType = "audio"
	InputTypeVideo    InputType = "video"
	InputTypeOther    InputType = "other"
)

// OriginalTextPreviewLength is the number of characters of the source text
// kept on a stored session.
const OriginalTextPreviewLength = 150

// QuizItem is a single multiple-choice question.
type QuizItem struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

// Flashcard is a front/back study card.
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// KeyPoint is a numbered extracted sentence.
type KeyPoint struct {
	ID    int    `json:"id"`
	Point string `json:"point"`
}

// Results holds the generated artifacts. Only requested features are set.
type Results struct {
	Summary    *string     `json:"summary,omitempty"`
	Quiz       []QuizItem  `json:"quiz,omitempty"`
	Flashcards []Flashcard `json:"flashcards,omitempty"`
	KeyPoints  []KeyPoint  `json:"keyPoints,omitempty"`
}

// Has reports whether the artifact for f is present.
func (r Results) Has(f Feature) bool {
	switch f {
	case FeatureSummary:
		return r.Summary != nil
	case FeatureQuiz:
		return r.Quiz != nil
	case FeatureFlashcards:
		return r.Flashcards != nil
	case FeatureKeyPoints:
		return r.KeyPoints != nil
	}
	return false
}

// StudySession is one processing request and its outputs.
// Sessions are immutable once stored.
type StudySession struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	OriginalText   string    `json:"originalText"`
	FullTextLength int       `json:"fullTextLength"`
	Results        Results   `json:"results"`
	Features       []Feature `json:"features"`
	Timestamp      time.Time `json:"timestamp"`
	WordCount      int       `json:"wordCount"`
	InputType      InputType `json:"inputType"`
	FileName       string    `json:"fileName,omitempty"`
}

// TableName returns the name of the database table
// associated with the StudySession model.
func (s StudySession) TableName() string {
	return "study_sessions"
}

// PreviewText truncates text to [OriginalTextPreviewLength] characters and
// appends "..." when it was longer.
func PreviewText(text string) string {
	runes := []rune(text)
	if len(runes) <= OriginalTextPreviewLength {
		return text
	}
	return string(runes[:OriginalTextPreviewLength]) + "..."
}

// Extraction is the outcome of turning an uploaded file into text.
type Extraction struct {
	Text      string
	InputType InputType
	// Placeholder is true when no real text could be recovered.
	Placeholder bool
}

// StudyInput is the service-level description of a processing request.
type StudyInput struct {
	UserID    string
	Text      string
	Features  []Feature
	InputType InputType
	FileName  string
}

// Stats aggregates a user's session history.
type Stats struct {
	TotalSessions   int               `json:"totalSessions"`
	TotalWords      int               `json:"totalWords"`
	AverageWords    int               `json:"averageWords"`
	MedianWords     int               `json:"medianWords"`
	MostUsedFeature Feature           `json:"mostUsedFeature,omitempty"`
	FirstSession    *time.Time        `json:"firstSession,omitempty"`
	LastSession     *time.Time        `json:"lastSession,omitempty"`
	InputTypes      map[InputType]int `json:"inputTypes"`
	FeatureUsage    map[Feature]int   `json:"featureUsage"`
}

// FileInput describes an uploaded file waiting to be processed. Path points
// at a temporary copy owned by the caller.
type FileInput struct {
	UserID      string
	Path        string
	FileName    string
	ContentType string
	Features    []Feature
}
