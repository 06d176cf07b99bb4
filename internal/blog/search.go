package blog

import (
	"fmt"
	"sort"
	"strings"
)

// MaxSearchLimit bounds the number of results a single search returns.
const MaxSearchLimit = 50

// Field weights for a single term occurrence.
const (
	titleWeight   = 3
	summaryWeight = 1
	authorWeight  = 1
)

// Search scores posts against query and returns at most limit matches ordered
// by score, then publication date, then their position in posts.
func Search(posts []Post, query string, limit int) ([]SearchResult, error) {
	terms := Tokenize(query)
	if len(terms) == 0 {
		return nil, fmt.Errorf("%w: query must not be empty", ErrInvalidInput)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidInput, limit)
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	results := make([]SearchResult, 0, len(posts))
	for _, p := range posts {
		score, matched := Score(p, terms)
		if score == 0 {
			continue
		}
		results = append(results, SearchResult{Post: p, Score: score, MatchedTerms: matched})
	}

	// Stable sort keeps original order as the final tie-breaker.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return NewerThan(results[i].Published, results[j].Published)
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Score returns the weighted occurrence count of terms in p and the terms
// that matched at least once.
func Score(p Post, terms []string) (float64, []string) {
	title := strings.ToLower(p.Title)
	summary := strings.ToLower(p.Summary)
	author := strings.ToLower(p.Author)

	var (
		score   int
		matched []string
	)
	for _, term := range terms {
		hits := titleWeight*strings.Count(title, term) +
			summaryWeight*strings.Count(summary, term) +
			authorWeight*strings.Count(author, term)
		if hits > 0 {
			score += hits
			matched = append(matched, term)
		}
	}
	return float64(score), matched
}

// Tokenize lowercases query and splits it on whitespace, dropping repeats.
func Tokenize(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	seen := make(map[string]bool, len(fields))
	terms := fields[:0]
	for _, f := range fields {
		if seen[f] {
			continue
		}
		seen[f] = true
		terms = append(terms, f)
	}
	return terms
}
