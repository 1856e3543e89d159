package transcripts

import (
	"bytes"
	"strings"

	"github.com/vlatan/transcript-api/internal/models"
	"github.com/yuin/goldmark"
)

// DefaultSeparator joins segments when the client doesn't provide one
const DefaultSeparator = " "

// ToPlainText joins the segments text with the separator as is
func ToPlainText(transcript models.Transcript, separator string) string {
	var sb strings.Builder
	for i, segment := range transcript {
		if i > 0 {
			sb.WriteString(separator)
		}
		sb.WriteString(segment.Text)
	}
	return sb.String()
}

// ToHTML renders markdown text to HTML.
// Raw HTML in the source is omitted.
func ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WordCount counts whitespace separated words
func WordCount(text string) int {
	return len(strings.Fields(text))
}
