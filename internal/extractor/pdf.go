package extractor

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

var spacesRe = regexp.MustCompile(`\s+`)

// maxPDFText bounds the text kept from a single document.
const maxPDFText = 4 << 20

// ExtractPDFText returns the text drawn on the pages of a PDF document with
// runs of whitespace collapsed. It returns "" without an error when the
// document parses but carries no readable text.
func ExtractPDFText(data []byte) (text string, err error) {
	// the reader reports most malformed input by panicking
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: %v", ErrMalformedPDF, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedPDF, err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedPDF, err)
	}

	raw, err := io.ReadAll(io.LimitReader(plain, maxPDFText))
	if err != nil {
		return "", fmt.Errorf("error reading pdf text: %w", err)
	}

	text = strings.TrimSpace(spacesRe.ReplaceAllString(string(raw), " "))
	if !readable(text) {
		return "", nil
	}
	return text, nil
}

// readable requires a mostly-printable result with some letters in it.
func readable(text string) bool {
	if text == "" {
		return false
	}
	var letters, printable, total int
	for _, r := range text {
		total++
		if r >= 32 && r < 127 || r > 159 {
			printable++
		}
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			letters++
		}
	}
	return letters > 0 && printable*10 >= total*9
}
