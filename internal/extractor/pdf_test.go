package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPDFText(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "literal strings",
			content: "BT /F1 12 Tf 72 712 Td (Cells divide) Tj ET",
			want:    "Cells divide",
		},
		{
			name:    "hex strings",
			content: "BT /F1 12 Tf 72 712 Td <43656C6C73> Tj [<20646976> -120 (ide)] TJ ET",
			want:    "Cells divide",
		},
		{
			name:    "separate text objects",
			content: "BT /F1 12 Tf (Mitosis) Tj ET BT /F1 12 Tf (and meiosis) Tj ET",
			want:    "Mitosis and meiosis",
		},
		{
			name:    "no text operators",
			content: "q 100 0 0 100 0 0 cm /Im0 Do Q",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractPDFText(buildPDF(t, tt.content, true))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractPDFText_ManyOperators(t *testing.T) {
	var content strings.Builder
	content.WriteString("BT /F1 12 Tf ")
	for range 20000 {
		content.WriteString("(ab) Tj [(cd)] TJ ")
	}
	content.WriteString("ET")

	got, err := ExtractPDFText(buildPDF(t, content.String(), true))
	require.NoError(t, err)
	assert.Len(t, got, 20000*4)
	assert.True(t, strings.HasPrefix(got, "abcdabcd"))
}

func TestExtractPDFText_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "not a pdf", data: []byte("plain words, no header")},
		{name: "missing trailer", data: []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n%%EOF\n")},
		{name: "empty", data: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractPDFText(tt.data)
			assert.ErrorIs(t, err, ErrMalformedPDF)
			assert.Empty(t, got)
		})
	}
}
