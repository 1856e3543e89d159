package transcripts

import "strings"

// DefaultLanguage is used when the client doesn't ask for any
const DefaultLanguage = "en"

// ParseLanguages splits a comma separated list of language codes.
// Order and duplicates are kept, codes are not validated.
func ParseLanguages(raw string) []string {
	if raw == "" {
		return []string{DefaultLanguage}
	}

	langs := strings.Split(raw, ",")
	for i, lang := range langs {
		langs[i] = strings.TrimSpace(lang)
	}

	return langs
}
