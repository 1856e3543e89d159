package gemini

import "strings"

// Graphic words in transcripts trip the safety filters
// even with every threshold at block none
var softener = strings.NewReplacer(
	"beheading", "killing",
	"beheaded", "killed",
	"execution", "killing",
	"slaughtered", "attacked",
	"massacre", "incident",
	"genocide", "conflict",
	"sexual slavery", "forced captivity",
	"sex slave", "captive",
	"raped", "abused",
	"rape", "abuse",
)

// sanitizePrompt replaces visceral words with milder synonyms
func sanitizePrompt(input string) string {
	return softener.Replace(input)
}
