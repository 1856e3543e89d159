package gemini

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"
)

// estimateTokens roughly estimates the prompt tokens,
// about four characters per token
func estimateTokens(text string) int {
	return utf8.RuneCountInString(text) / 4
}

// cleanSummary trims the model output and unwraps
// a markdown code fence if the whole answer is in one
func cleanSummary(raw string) string {
	summary := strings.TrimSpace(raw)

	if !strings.HasPrefix(summary, "```") || !strings.HasSuffix(summary, "```") {
		return summary
	}

	summary = strings.TrimSuffix(summary, "```")
	if i := strings.IndexByte(summary, '\n'); i >= 0 {
		summary = summary[i+1:]
	} else {
		summary = strings.TrimPrefix(summary, "```")
	}

	return strings.TrimSpace(summary)
}

// cacheKey identifies a summary of the text
func cacheKey(model, text string, words int) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("summary:%s:%d:%s", model, words, hex.EncodeToString(sum[:]))
}
