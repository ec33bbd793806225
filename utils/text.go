package utils

import "strings"

// SplitIngredientTokens breaks a model reply into candidate ingredient names.
// The model is asked for a comma-separated list but tends to answer one name
// per line, so both separators are honoured. Tokens are trimmed and empties
// dropped; no other normalisation happens here, matching against the catalog
// is exact.
func SplitIngredientTokens(reply string) []string {
	fields := strings.FieldsFunc(reply, func(r rune) bool {
		return r == ',' || r == '\n'
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := strings.TrimSpace(f); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
