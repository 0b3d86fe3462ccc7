package parse

import (
	"regexp"
	"sort"
	"strings"
)

const maxKeywords = 20

var keywordRe = regexp.MustCompile(`\b[a-z]{3,}\b`)

// stopWords are common English function words excluded from keyword counts.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "up": true, "about": true,
	"into": true, "through": true, "during": true, "before": true,
	"after": true, "above": true, "below": true, "between": true,
	"among": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true, "have": true, "has": true,
	"had": true, "do": true, "does": true, "did": true, "will": true,
	"would": true, "could": true, "should": true, "may": true, "might": true,
	"must": true, "can": true, "this": true, "that": true, "these": true,
	"those": true, "i": true, "you": true, "he": true, "she": true,
	"it": true, "we": true, "they": true, "me": true, "him": true,
	"her": true, "us": true, "them": true, "my": true, "your": true,
	"his": true, "its": true, "our": true, "their": true,
}

// ExtractKeywords returns the 20 most frequent non-stop-word alphabetic
// terms of length >= 3. Ties break by first appearance in the text, via a
// stable sort, so results are deterministic across runs.
func ExtractKeywords(text string) []string {
	words := keywordRe.FindAllString(strings.ToLower(text), -1)

	counts := make(map[string]int, len(words))
	firstSeen := make(map[string]int, len(words))
	unique := make([]string, 0, len(words))
	for _, word := range words {
		if stopWords[word] {
			continue
		}
		if _, ok := counts[word]; !ok {
			firstSeen[word] = len(unique)
			unique = append(unique, word)
		}
		counts[word]++
	}

	sort.SliceStable(unique, func(i, j int) bool {
		if counts[unique[i]] != counts[unique[j]] {
			return counts[unique[i]] > counts[unique[j]]
		}
		return firstSeen[unique[i]] < firstSeen[unique[j]]
	})

	if len(unique) > maxKeywords {
		unique = unique[:maxKeywords]
	}
	return unique
}
