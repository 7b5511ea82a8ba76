package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-study-buddy/internal/adapter"
	"github.com/MKhiriev/go-study-buddy/internal/heuristics"
	"github.com/MKhiriev/go-study-buddy/internal/logger"
	"github.com/MKhiriev/go-study-buddy/internal/store"
	"github.com/MKhiriev/go-study-buddy/internal/utils"
	"github.com/MKhiriev/go-study-buddy/internal/validators"
	"github.com/MKhiriev/go-study-buddy/models"
	"github.com/montanaflynn/stats"
)

type studyService struct {
	sessions  store.SessionRepository
	inference adapter.InferenceAdapter
	extractor FileExtractor
	engine    *heuristics.Engine
	ids       *utils.UUIDGenerator

	now    func() time.Time
	logger *logger.Logger
}

// NewStudyService constructs a StudyService. inference may be nil, in which
// case every summary comes from the local heuristics.
func NewStudyService(sessions store.SessionRepository, inference adapter.InferenceAdapter, extractor FileExtractor, logger *logger.Logger) StudyService {
	return &studyService{
		sessions:  sessions,
		inference: inference,
		extractor: extractor,
		engine:    heuristics.NewEngine(),
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *studyService) Process(ctx context.Context, input models.StudyInput) (models.StudySession, error) {
	log := logger.FromContext(ctx)

	if input.UserID == "" {
		return models.StudySession{}, ErrNoUserID
	}

	text := strings.TrimSpace(input.Text)
	features := canonicalFeatures(input.Features)
	inputType := input.InputType
	if inputType == "" {
		inputType = models.InputTypeText
	}

	session := models.StudySession{
		ID:             s.ids.Generate(),
		UserID:         input.UserID,
		OriginalText:   models.PreviewText(text),
		FullTextLength: utf8.RuneCountInString(text),
		Results:        s.engine.Generate(ctx, text, features, s.summarizeWithFallback),
		Features:       features,
		Timestamp:      s.now().UTC(),
		WordCount:      len(strings.Fields(text)),
		InputType:      inputType,
		FileName:       input.FileName,
	}

	stored, err := s.sessions.Append(ctx, session)
	if err != nil {
		log.Err(err).Str("user_id", input.UserID).Msg("error storing study session")
		return models.StudySession{}, fmt.Errorf("error storing study session: %w", err)
	}

	log.Info().
		Str("session_id", stored.ID).
		Int("words", stored.WordCount).
		Str("input_type", string(stored.InputType)).
		Msg("study session created")
	return stored, nil
}

func (s *studyService) ProcessFile(ctx context.Context, input models.FileInput) (models.StudySession, error) {
	if input.UserID == "" {
		return models.StudySession{}, ErrNoUserID
	}

	extraction, err := s.extractor.Extract(ctx, input.Path, input.FileName, input.ContentType)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("file", input.FileName).Msg("error extracting upload")
		return models.StudySession{}, fmt.Errorf("error extracting %s: %w", input.FileName, err)
	}
	if utf8.RuneCountInString(strings.TrimSpace(extraction.Text)) < validators.MinTextLength {
		return models.StudySession{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrTextTooShort)
	}

	features := input.Features
	if len(features) == 0 {
		features = models.AllFeatures
	}

	return s.Process(ctx, models.StudyInput{
		UserID:    input.UserID,
		Text:      extraction.Text,
		Features:  features,
		InputType: extraction.InputType,
		FileName:  input.FileName,
	})
}

func (s *studyService) History(ctx context.Context, userID string, limit int) ([]models.StudySession, error) {
	if userID == "" {
		return nil, ErrNoUserID
	}

	sessions, err := s.sessions.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing study sessions: %w", err)
	}
	return sessions, nil
}

func (s *studyService) Session(ctx context.Context, sessionID, userID string) (models.StudySession, error) {
	if userID == "" {
		return models.StudySession{}, ErrNoUserID
	}

	session, err := s.sessions.Get(ctx, sessionID, userID)
	if err != nil {
		return models.StudySession{}, fmt.Errorf("error loading study session: %w", err)
	}
	return session, nil
}

// Stats aggregates every retained session of the user.
func (s *studyService) Stats(ctx context.Context, userID string) (models.Stats, error) {
	sessions, err := s.History(ctx, userID, 0)
	if err != nil {
		return models.Stats{}, err
	}
	return aggregateStats(sessions), nil
}

// summarizeWithFallback asks the remote model first and falls back to the
// local summary on any upstream failure.
func (s *studyService) summarizeWithFallback(ctx context.Context, text string) string {
	if s.inference == nil || !s.inference.Enabled() {
		return heuristics.Summarize(text)
	}

	summary, err := s.inference.Summarize(ctx, text)
	if err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Bool("upstream", errors.Is(err, adapter.ErrUpstream)).
			Msg("remote summary failed, using local summary")
		return heuristics.Summarize(text)
	}

	return summary
}

// canonicalFeatures drops duplicates and orders features as in
// models.AllFeatures.
func canonicalFeatures(requested []models.Feature) []models.Feature {
	wanted := make(map[models.Feature]struct{}, len(requested))
	for _, f := range requested {
		wanted[f] = struct{}{}
	}

	features := make([]models.Feature, 0, len(wanted))
	for _, f := range models.AllFeatures {
		if _, ok := wanted[f]; ok {
			features = append(features, f)
		}
	}
	return features
}

func aggregateStats(sessions []models.StudySession) models.Stats {
	summary := models.Stats{
		TotalSessions: len(sessions),
		InputTypes:    make(map[models.InputType]int),
		FeatureUsage:  make(map[models.Feature]int),
	}
	if len(sessions) == 0 {
		return summary
	}

	words := make(stats.Float64Data, 0, len(sessions))
	first, last := sessions[0].Timestamp, sessions[0].Timestamp
	for _, session := range sessions {
		summary.TotalWords += session.WordCount
		words = append(words, float64(session.WordCount))
		summary.InputTypes[session.InputType]++
		for _, f := range session.Features {
			summary.FeatureUsage[f]++
		}
		if session.Timestamp.Before(first) {
			first = session.Timestamp
		}
		if session.Timestamp.After(last) {
			last = session.Timestamp
		}
	}

	if mean, err := words.Mean(); err == nil {
		summary.AverageWords = int(math.Round(mean))
	}
	if median, err := words.Median(); err == nil {
		summary.MedianWords = int(math.Round(median))
	}
	summary.FirstSession = &first
	summary.LastSession = &last

	best := 0
	for _, f := range models.AllFeatures {
		if n := summary.FeatureUsage[f]; n > best {
			best = n
			summary.MostUsedFeature = f
		}
	}

	return summary
}
