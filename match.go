package fluentdoc

import (
	"sort"
	"strings"
)

// Scoring weights for FindSection. The matcher disambiguates among a few
// hundred section titles at most, so a simple lexical score is enough:
// substring hits dominate, a prefix hit nudges, and shorter titles win on
// equal overlap because they name more specific sections.
const (
	wordMatchScore   = 10.0
	titlePrefixBonus = 5.0
	brevityWeight    = 50.0
)

// FindSection returns the TOC entry best matching a free-text query, or nil
// if no entry scores above zero. Comparison is case-insensitive throughout.
// An exact title match short-circuits and returns the first such entry in
// index order. Ties are broken by TOC document order.
func FindSection(query string, entries []TocEntry) *TocEntry {
	queryLower := strings.ToLower(query)
	queryWords := uniqueWords(queryLower)

	type candidate struct {
		score float64
		entry TocEntry
	}
	var scored []candidate

	for _, entry := range entries {
		titleLower := strings.ToLower(entry.Title)

		if queryLower == titleLower {
			e := entry
			return &e
		}

		var score float64
		for _, word := range queryWords {
			if strings.Contains(titleLower, word) {
				score += wordMatchScore
				if strings.HasPrefix(titleLower, word) {
					score += titlePrefixBonus
				}
			}
		}
		if score > 0 {
			score += brevityWeight / float64(len(entry.Title))
			scored = append(scored, candidate{score: score, entry: entry})
		}
	}

	if len(scored) == 0 {
		return nil
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	best := scored[0].entry
	return &best
}

// uniqueWords splits on whitespace and drops repeats so a word occurring
// twice in the query is not double-counted.
func uniqueWords(s string) []string {
	fields := strings.Fields(s)
	seen := make(map[string]bool, len(fields))
	words := fields[:0]
	for _, f := range fields {
		if !seen[f] {
			seen[f] = true
			words = append(words, f)
		}
	}
	return words
}
