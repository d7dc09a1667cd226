package chirps

import "strings"

const censored = "****"

var profane = map[string]struct{}{
	"kerfuffle": {},
	"sharbert":  {},
	"fornax":    {},
}

// CleanBody replaces denylisted words (case-insensitive, whole words split on
// single spaces) with ****. Other words are kept as written.
func CleanBody(body string) string {
	words := strings.Split(body, " ")
	for i, w := range words {
		if _, bad := profane[strings.ToLower(w)]; bad {
			words[i] = censored
		}
	}
	return strings.Join(words, " ")
}
