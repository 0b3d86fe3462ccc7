package parse

import (
	"math"
	"regexp"
	"strings"
)

var (
	sentenceSplitRe  = regexp.MustCompile(`[.!?]+`)
	syllableSuffixRe = regexp.MustCompile(`(?:[^laeiouy]es|ed|[^laeiouy]e)$`)
	vowelRunRe       = regexp.MustCompile(`[aeiouy]{1,2}`)
)

// ReadabilityScore computes the Flesch Reading Ease of the text, rounded and
// clamped to [0,100]. Zero sentences or zero words yield 0.
func ReadabilityScore(text string) int {
	sentences := 0
	for _, s := range sentenceSplitRe.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	words := strings.Fields(text)
	if sentences == 0 || len(words) == 0 {
		return 0
	}

	syllables := 0
	for _, word := range words {
		syllables += countSyllables(word)
	}

	avgWordsPerSentence := float64(len(words)) / float64(sentences)
	avgSyllablesPerWord := float64(syllables) / float64(len(words))
	score := 206.835 - 1.015*avgWordsPerSentence - 84.6*avgSyllablesPerWord

	return int(math.Max(0, math.Min(100, math.Round(score))))
}

// countSyllables approximates syllables by counting vowel runs after
// stripping a silent suffix and a leading y. Minimum is one.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	if len(word) <= 3 {
		return 1
	}
	word = syllableSuffixRe.ReplaceAllString(word, "")
	word = strings.TrimPrefix(word, "y")

	runs := vowelRunRe.FindAllString(word, -1)
	if len(runs) == 0 {
		return 1
	}
	return len(runs)
}
