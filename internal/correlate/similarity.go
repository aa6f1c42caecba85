// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package correlate

import (
	"strings"
	"unicode"
)

// stopwords are excluded from bio token comparison; matching on them says
// nothing about shared authorship.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "as": true, "is": true, "was": true,
	"are": true, "be": true, "been": true, "have": true, "has": true, "had": true,
	"do": true, "does": true, "did": true, "will": true, "would": true,
	"can": true, "could": true, "should": true, "may": true, "not": true,
	"i": true, "me": true, "my": true, "we": true, "our": true, "you": true,
	"your": true, "he": true, "she": true, "it": true, "its": true,
	"they": true, "them": true, "their": true, "this": true, "that": true,
	"these": true, "those": true, "all": true, "who": true, "what": true,
}

// LevenshteinRatio returns 1 - editDistance/maxLen for lowercase comparison,
// in [0, 1]. Equal strings score 1.
func LevenshteinRatio(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return 1.0
	}
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshtein(a, b))/float64(maxLen)
}

// levenshtein computes edit distance over runes with a two-row table.
func levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// SignificantWords lowercases s, splits on non-letter/non-digit runes (so
// hyphenated compounds contribute their parts), and drops stopwords and
// tokens shorter than three runes.
func SignificantWords(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var words []string
	for _, w := range fields {
		if len([]rune(w)) >= 3 && !stopwords[w] {
			words = append(words, w)
		}
	}
	return words
}

// TokenOverlap returns the overlap coefficient of the significant-word sets
// of a and b: |intersection| / min(|A|, |B|), in [0, 1]. The overlap
// coefficient is used instead of plain Jaccard because short bios rarely
// share enough of their union to clear a useful threshold even when one
// clearly paraphrases the other. Empty sets score 0.
func TokenOverlap(a, b string) float64 {
	setA := make(map[string]bool)
	for _, w := range SignificantWords(a) {
		setA[w] = true
	}
	setB := make(map[string]bool)
	for _, w := range SignificantWords(b) {
		setB[w] = true
	}
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for w := range setA {
		if setB[w] {
			intersection++
		}
	}
	return float64(intersection) / float64(min(len(setA), len(setB)))
}
