package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/soochol/awsblogs/internal/services"
)

// ReadBlogPostTool fetches a blog post and returns one markdown chunk.
type ReadBlogPostTool struct {
	svc *services.BlogService
}

func (t *ReadBlogPostTool) Name() string { return "read_blog_post" }

func (t *ReadBlogPostTool) Description() string {
	return "Fetch an AWS blog post (https://aws.amazon.com/blogs/...) and convert it to markdown with a " +
		"title/author/date/category header. Long posts are paginated: when has_more is true, call again " +
		"with start_index set to next_start_index."
}

func (t *ReadBlogPostTool) InputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"url": map[string]any{
				"type":        "string",
				"description": "URL of the AWS blog post to read",
			},
			"max_length": map[string]any{
				"type":        "integer",
				"description": "Maximum number of characters to return",
				"default":     services.DefaultReadLength,
				"minimum":     1,
				"maximum":     services.MaxReadLength - 1,
			},
			"start_index": map[string]any{
				"type":        "integer",
				"description": "Starting character index for pagination",
				"default":     0,
				"minimum":     0,
			},
		},
		"required": []any{"url"},
	}
}

// ReadResult is one page of a converted blog post.
type ReadResult struct {
	URL            string     `json:"url"`
	Title          string     `json:"title,omitempty"`
	Author         string     `json:"author,omitempty"`
	Published      *time.Time `json:"published,omitempty"`
	Category       string     `json:"category,omitempty"`
	Content        string     `json:"content"`
	StartIndex     int        `json:"start_index"`
	TotalLength    int        `json:"total_length"`
	HasMore        bool       `json:"has_more"`
	NextStartIndex int        `json:"next_start_index"`
}

// Text renders the chunk followed by a continuation hint.
func (r *ReadResult) Text() string {
	if r.Content == "" && !r.HasMore {
		return "No more content available."
	}
	if r.HasMore {
		return r.Content + fmt.Sprintf("\n\n[Content truncated. Use start_index=%d to continue reading.]", r.NextStartIndex)
	}
	return r.Content
}

func (t *ReadBlogPostTool) Execute(ctx context.Context, input any) (any, error) {
	args, err := argsMap(input)
	if err != nil {
		return nil, err
	}
	url, err := requiredStringArg(args, "url")
	if err != nil {
		return nil, err
	}
	maxLength, err := intArg(args, "max_length", services.DefaultReadLength)
	if err != nil {
		return nil, err
	}
	start, err := intArg(args, "start_index", 0)
	if err != nil {
		return nil, err
	}

	resp, err := t.svc.Read(ctx, url, maxLength, start)
	if err != nil {
		return nil, err
	}
	return &ReadResult{
		URL:            resp.Page.URL,
		Title:          resp.Page.Title,
		Author:         resp.Page.Author,
		Published:      resp.Page.Published,
		Category:       resp.Page.Category,
		Content:        resp.Chunk.Content,
		StartIndex:     resp.Chunk.StartIndex,
		TotalLength:    resp.Chunk.TotalLength,
		HasMore:        resp.Chunk.HasMore,
		NextStartIndex: resp.Chunk.NextStartIndex,
	}, nil
}
