package blog

import "time"

// Post is a normalized feed entry.
type Post struct {
	Title     string     `json:"title"`
	URL       string     `json:"url"`
	Author    string     `json:"author,omitempty"`
	Published *time.Time `json:"published,omitempty"`
	Category  string     `json:"category"`
	Summary   string     `json:"summary,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
}

// SearchResult is a post with its relevance score.
type SearchResult struct {
	Post
	Score        float64  `json:"score"`
	MatchedTerms []string `json:"matched_terms"`
}

// PageChunk is one bounded slice of a converted document. Indices count runes.
type PageChunk struct {
	Content        string `json:"content"`
	StartIndex     int    `json:"start_index"`
	TotalLength    int    `json:"total_length"`
	HasMore        bool   `json:"has_more"`
	NextStartIndex int    `json:"next_start_index"`
}

// NewerThan orders posts by publication date; undated posts sort last.
func NewerThan(a, b *time.Time) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return a.After(*b)
	}
}
