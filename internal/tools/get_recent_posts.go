package tools

import (
	"context"

	"github.com/soochol/awsblogs/internal/blog"
	"github.com/soochol/awsblogs/internal/feed"
	"github.com/soochol/awsblogs/internal/services"
)

// RecentPostsTool lists the newest posts of one or all categories.
type RecentPostsTool struct {
	svc *services.BlogService
}

func (t *RecentPostsTool) Name() string { return "get_recent_posts" }

func (t *RecentPostsTool) Description() string {
	return "Get the most recent AWS blog posts, newest first, from one category or from all categories " +
		"when category is omitted. Categories that fail to load are reported in errors."
}

func (t *RecentPostsTool) InputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"category": map[string]any{
				"type":        "string",
				"description": "Category id to get posts from; all categories when omitted",
			},
			"limit": map[string]any{
				"type":        "integer",
				"description": "Maximum number of posts to return",
				"default":     services.DefaultRecentLimit,
				"minimum":     1,
				"maximum":     services.MaxRecentLimit,
			},
		},
	}
}

// PostsResult is the response of get_recent_posts.
type PostsResult struct {
	Category string               `json:"category,omitempty"`
	Posts    []blog.Post          `json:"posts"`
	Count    int                  `json:"count"`
	Errors   []feed.CategoryError `json:"errors,omitempty"`
}

func (t *RecentPostsTool) Execute(ctx context.Context, input any) (any, error) {
	args, err := argsMap(input)
	if err != nil {
		return nil, err
	}
	category, err := stringArg(args, "category")
	if err != nil {
		return nil, err
	}
	limit, err := intArg(args, "limit", services.DefaultRecentLimit)
	if err != nil {
		return nil, err
	}

	resp, err := t.svc.Recent(ctx, category, limit)
	if err != nil {
		return nil, err
	}
	posts := resp.Posts
	if posts == nil {
		posts = []blog.Post{}
	}
	return &PostsResult{
		Category: category,
		Posts:    posts,
		Count:    len(posts),
		Errors:   resp.Errors,
	}, nil
}
