// Package analytics provides small token-frequency helpers shared by the
// document parser (keyword mining) and the stylesheet stats reporting.
package analytics

import (
	"fmt"
	"sort"
	"strings"
)

// stopwords are filtered out of frequency results. The list leans toward
// English function words plus common web chrome noise.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "against": {},
	"all": {}, "also": {}, "am": {}, "an": {}, "and": {}, "another": {},
	"any": {}, "are": {}, "as": {}, "at": {},

	"back": {}, "be": {}, "because": {}, "been": {}, "before": {}, "being": {},
	"below": {}, "between": {}, "both": {}, "but": {}, "by": {},

	"can": {}, "cannot": {}, "could": {},

	"did": {}, "do": {}, "does": {}, "doing": {}, "down": {}, "during": {},

	"each": {}, "either": {}, "else": {}, "even": {}, "ever": {}, "every": {},

	"few": {}, "for": {}, "from": {}, "further": {},

	"had": {}, "has": {}, "have": {}, "having": {}, "he": {}, "her": {},
	"here": {}, "hers": {}, "herself": {}, "him": {}, "himself": {},
	"his": {}, "how": {}, "however": {},

	"i": {}, "if": {}, "in": {}, "into": {}, "is": {}, "it": {}, "its": {},
	"itself": {},

	"just": {},

	"less": {}, "like": {},

	"made": {}, "make": {}, "many": {}, "may": {}, "me": {}, "might": {},
	"more": {}, "most": {}, "much": {}, "must": {}, "my": {}, "myself": {},

	"neither": {}, "never": {}, "no": {}, "nor": {}, "not": {}, "now": {},

	"of": {}, "off": {}, "often": {}, "on": {}, "once": {}, "one": {},
	"only": {}, "or": {}, "other": {}, "our": {}, "ours": {}, "ourselves": {},
	"out": {}, "over": {}, "own": {},

	"rather": {},

	"same": {}, "she": {}, "should": {}, "since": {}, "so": {}, "some": {},
	"still": {}, "such": {},

	"than": {}, "that": {}, "the": {}, "their": {}, "theirs": {}, "them": {},
	"themselves": {}, "then": {}, "there": {}, "these": {}, "they": {},
	"this": {}, "those": {}, "through": {}, "thus": {}, "to": {}, "too": {},

	"under": {}, "until": {}, "up": {}, "upon": {}, "us": {}, "use": {},

	"very": {}, "via": {},

	"was": {}, "we": {}, "well": {}, "were": {}, "what": {}, "when": {},
	"where": {}, "whether": {}, "which": {}, "while": {}, "who": {},
	"whose": {}, "why": {}, "will": {}, "with": {}, "within": {},
	"without": {}, "would": {},

	"yet": {}, "you": {}, "your": {}, "yours": {}, "yourself": {},

	// Common web/UI noise
	"click": {}, "page": {}, "pages": {}, "site": {}, "website": {},
	"home": {}, "menu": {}, "search": {}, "link": {}, "links": {},
	"loading": {}, "read": {}, "share": {},
}

// IsStopword reports whether a word is filtered from keyword results.
func IsStopword(word string) bool {
	_, ok := stopwords[strings.ToLower(word)]
	return ok
}

// WordFrequency counts non-stopword tokens in text. Tokens are lowercased
// and stripped of leading/trailing punctuation.
func WordFrequency(text string) map[string]int {
	frequencies := make(map[string]int)

	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return ('a' > r || r > 'z') && ('0' > r || r > '9')
		})
		if word == "" {
			continue
		}
		if _, ok := stopwords[word]; ok {
			continue
		}
		frequencies[word]++
	}

	return frequencies
}

// TopN returns the n highest counts as "token:count" strings, sorted
// descending. Ties fall back to lexicographic order so results are
// deterministic across runs.
func TopN(counts map[string]int, n int) []string {
	type kv struct {
		key   string
		count int
	}

	sorted := make([]kv, 0, len(counts))
	for k, v := range counts {
		sorted = append(sorted, kv{key: k, count: v})
	}

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].key < sorted[j].key
	})

	limit := n
	if len(sorted) < limit {
		limit = len(sorted)
	}
	if limit < 0 {
		limit = 0
	}

	top := make([]string, limit)
	for i := 0; i < limit; i++ {
		top[i] = fmt.Sprintf("%s:%d", sorted[i].key, sorted[i].count)
	}
	return top
}
