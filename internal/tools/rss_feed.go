package tools

import (
	"context"

	"github.com/soochol/awsblogs/internal/blog"
	"github.com/soochol/awsblogs/internal/services"
)

// RSSFeedTool returns the normalized entries of one category's RSS feed.
type RSSFeedTool struct {
	svc *services.BlogService
}

func (t *RSSFeedTool) Name() string { return "get_rss_feed" }

func (t *RSSFeedTool) Description() string {
	return "Fetch and parse the RSS feed of one AWS blog category. Returns structured entries with title, " +
		"link, published date, summary, author and tags."
}

func (t *RSSFeedTool) InputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"category": map[string]any{
				"type":        "string",
				"description": `Category id (e.g. "machine-learning", "security")`,
			},
			"limit": map[string]any{
				"type":        "integer",
				"description": "Maximum number of entries to return",
				"default":     services.DefaultFeedLimit,
				"minimum":     1,
				"maximum":     services.MaxFeedLimit,
			},
		},
		"required": []any{"category"},
	}
}

// FeedResult is the response of get_rss_feed.
type FeedResult struct {
	Category string      `json:"category"`
	Name     string      `json:"name"`
	FeedURL  string      `json:"feed_url"`
	Posts    []blog.Post `json:"posts"`
	Count    int         `json:"count"`
}

func (t *RSSFeedTool) Execute(ctx context.Context, input any) (any, error) {
	args, err := argsMap(input)
	if err != nil {
		return nil, err
	}
	category, err := requiredStringArg(args, "category")
	if err != nil {
		return nil, err
	}
	limit, err := intArg(args, "limit", services.DefaultFeedLimit)
	if err != nil {
		return nil, err
	}

	cat, posts, err := t.svc.Feed(ctx, category, limit)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []blog.Post{}
	}
	return &FeedResult{
		Category: cat.ID,
		Name:     cat.Name,
		FeedURL:  cat.FeedURL,
		Posts:    posts,
		Count:    len(posts),
	}, nil
}
