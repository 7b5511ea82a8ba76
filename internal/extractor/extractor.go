// Package extractor turns uploaded files into plain text for the study
// pipeline.
package extractor

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"

	"github.com/MKhiriev/go-study-buddy/internal/logger"
	"github.com/MKhiriev/go-study-buddy/models"
)

const (
	mimeOctetStream = "application/octet-stream"
	mimePDF         = "application/pdf"
)

const (
	transcriptPlaceholder = "Transcription of %s is unavailable. The audio could not be converted to text, " +
		"so this study material is based only on the uploaded file name and general study guidance."
	pdfPlaceholder = "The PDF document %s was uploaded, but no readable text could be extracted from it. " +
		"Scanned pages and image-only documents need optical character recognition before they can be studied."
	unsupportedPlaceholder = "The file %s was uploaded for study. Its format does not support text extraction, " +
		"so this session contains general study material based on the file name."
)

// Transcriber converts audio or video bytes to text.
type Transcriber interface {
	Transcribe(ctx context.Context, data []byte, contentType string) (string, error)
}

// Extractor dispatches an uploaded file to the right text source by MIME type.
type Extractor struct {
	transcriber Transcriber
	logger      *logger.Logger
}

// New constructs an Extractor. transcriber may be nil, in which case audio
// and video always produce placeholder text.
func New(transcriber Transcriber, log *logger.Logger) *Extractor {
	return &Extractor{
		transcriber: transcriber,
		logger:      log.WithComponent("extractor"),
	}
}

// Extract reads the file at path and returns its text. declaredType is the
// Content-Type sent by the client; when it is empty or generic the type is
// sniffed from the file contents. Only a failure to read the file is an error.
func (e *Extractor) Extract(ctx context.Context, path, fileName, declaredType string) (models.Extraction, error) {
	contentType, err := e.contentType(path, declaredType)
	if err != nil {
		return models.Extraction{}, err
	}

	log := logger.FromContext(ctx)
	log.Debug().Str("file", fileName).Str("content_type", contentType).Msg("extracting text")

	switch {
	case strings.HasPrefix(contentType, "audio/"), strings.HasPrefix(contentType, "video/"):
		inputType := models.InputTypeAudio
		if strings.HasPrefix(contentType, "video/") {
			inputType = models.InputTypeVideo
		}
		return e.transcribe(ctx, path, fileName, contentType, inputType)

	case contentType == mimePDF:
		data, err := os.ReadFile(path)
		if err != nil {
			return models.Extraction{}, fmt.Errorf("error reading upload: %w", err)
		}
		text, err := ExtractPDFText(data)
		if text == "" {
			log.Warn().Err(err).Str("file", fileName).Msg("no text recovered from pdf")
			return placeholder(pdfPlaceholder, fileName, models.InputTypePDF), nil
		}
		return models.Extraction{Text: text, InputType: models.InputTypePDF}, nil

	case strings.HasPrefix(contentType, "text/"):
		data, err := os.ReadFile(path)
		if err != nil {
			return models.Extraction{}, fmt.Errorf("error reading upload: %w", err)
		}
		text := string(data)
		if !utf8.ValidString(text) {
			text = strings.ToValidUTF8(text, "")
		}
		return models.Extraction{Text: strings.TrimSpace(text), InputType: models.InputTypeDocument}, nil

	default:
		return placeholder(unsupportedPlaceholder, fileName, models.InputTypeOther), nil
	}
}

func (e *Extractor) transcribe(ctx context.Context, path, fileName, contentType string, inputType models.InputType) (models.Extraction, error) {
	if e.transcriber == nil {
		return placeholder(transcriptPlaceholder, fileName, inputType), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.Extraction{}, fmt.Errorf("error reading upload: %w", err)
	}

	text, err := e.transcriber.Transcribe(ctx, data, contentType)
	if err != nil || strings.TrimSpace(text) == "" {
		logger.FromContext(ctx).Warn().Err(err).Str("file", fileName).Msg("transcription failed, using placeholder")
		return placeholder(transcriptPlaceholder, fileName, inputType), nil
	}

	return models.Extraction{Text: strings.TrimSpace(text), InputType: inputType}, nil
}

func (e *Extractor) contentType(path, declared string) (string, error) {
	base, _, _ := strings.Cut(declared, ";")
	base = strings.ToLower(strings.TrimSpace(base))
	if base != "" && base != mimeOctetStream {
		return base, nil
	}

	detected, err := mimetype.DetectFile(path)
	if err != nil {
		return "", fmt.Errorf("error detecting content type: %w", err)
	}
	base, _, _ = strings.Cut(detected.String(), ";")
	return strings.TrimSpace(base), nil
}

func placeholder(format, fileName string, inputType models.InputType) models.Extraction {
	return models.Extraction{
		Text:        fmt.Sprintf(format, fileName),
		InputType:   inputType,
		Placeholder: true,
	}
}
