package parse

import (
	"strings"
	"testing"
)

func TestExtractKeywordsOrdersByFrequency(t *testing.T) {
	text := "kafka kafka kafka redis redis docker"
	got := ExtractKeywords(text)

	want := []string{"kafka", "redis", "docker"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExtractKeywordsTiesBreakByFirstAppearance(t *testing.T) {
	text := "alpha beta alpha beta gamma"
	got := ExtractKeywords(text)

	want := []string{"alpha", "beta", "gamma"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestExtractKeywordsExcludesStopWordsAndShortTokens(t *testing.T) {
	text := "the and with go is engineering engineering"
	got := ExtractKeywords(text)

	if len(got) != 1 || got[0] != "engineering" {
		t.Fatalf("got %v, want [engineering]", got)
	}
}

func TestExtractKeywordsCapsAtTwenty(t *testing.T) {
	var sb strings.Builder
	for r := 'a'; r <= 'z'; r++ {
		sb.WriteString(strings.Repeat(string(r), 4))
		sb.WriteString(" ")
	}
	got := ExtractKeywords(sb.String())

	if len(got) != 20 {
		t.Fatalf("got %d keywords, want 20", len(got))
	}
}

func TestExtractKeywordsDeterministic(t *testing.T) {
	text := sampleResume
	first := ExtractKeywords(text)
	for i := 0; i < 10; i++ {
		again := ExtractKeywords(text)
		if len(again) != len(first) {
			t.Fatal("keyword count changed between runs")
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("run %d: keyword order changed at %d: %q vs %q", i, j, again[j], first[j])
			}
		}
	}
}
