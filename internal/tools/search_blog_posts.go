package tools

import (
	"context"

	"github.com/soochol/awsblogs/internal/blog"
	"github.com/soochol/awsblogs/internal/feed"
	"github.com/soochol/awsblogs/internal/services"
)

// SearchBlogPostsTool ranks recent feed entries by keyword relevance.
type SearchBlogPostsTool struct {
	svc *services.BlogService
}

func (t *SearchBlogPostsTool) Name() string { return "search_blog_posts" }

func (t *SearchBlogPostsTool) Description() string {
	return "Search recent AWS blog posts by keywords, optionally within one category. Title matches " +
		"rank above summary and author matches. Use AWS service names (EC2, Lambda, S3) for best results."
}

func (t *SearchBlogPostsTool) InputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "Search query; whitespace-separated terms, case-insensitive",
			},
			"category": map[string]any{
				"type":        "string",
				"description": `Optional category id to search (e.g. "machine-learning", "security"); all categories when omitted`,
			},
			"limit": map[string]any{
				"type":        "integer",
				"description": "Maximum number of results to return",
				"default":     services.DefaultSearchLimit,
				"minimum":     1,
				"maximum":     blog.MaxSearchLimit,
			},
		},
		"required": []any{"query"},
	}
}

// SearchResult is the response of search_blog_posts.
type SearchResult struct {
	Query    string               `json:"query"`
	Category string               `json:"category,omitempty"`
	Results  []blog.SearchResult  `json:"results"`
	Count    int                  `json:"count"`
	Errors   []feed.CategoryError `json:"errors,omitempty"`
}

func (t *SearchBlogPostsTool) Execute(ctx context.Context, input any) (any, error) {
	args, err := argsMap(input)
	if err != nil {
		return nil, err
	}
	query, err := stringArg(args, "query")
	if err != nil {
		return nil, err
	}
	category, err := stringArg(args, "category")
	if err != nil {
		return nil, err
	}
	limit, err := intArg(args, "limit", services.DefaultSearchLimit)
	if err != nil {
		return nil, err
	}

	resp, err := t.svc.Search(ctx, query, category, limit)
	if err != nil {
		return nil, err
	}
	results := resp.Results
	if results == nil {
		results = []blog.SearchResult{}
	}
	return &SearchResult{
		Query:    query,
		Category: category,
		Results:  results,
		Count:    len(results),
		Errors:   resp.Errors,
	}, nil
}
