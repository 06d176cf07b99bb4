package tools

import (
	"context"

	"github.com/soochol/awsblogs/internal/blog"
	"github.com/soochol/awsblogs/internal/services"
)

// ListBlogCategoriesTool lists the fixed set of blog categories.
type ListBlogCategoriesTool struct {
	svc *services.BlogService
}

func (t *ListBlogCategoriesTool) Name() string { return "list_blog_categories" }

func (t *ListBlogCategoriesTool) Description() string {
	return "List the available AWS blog categories with their ids, names, blog URLs and RSS feed URLs."
}

func (t *ListBlogCategoriesTool) InputSchema() map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}
}

// CategoriesResult is the response of list_blog_categories.
type CategoriesResult struct {
	Categories []blog.Category `json:"categories"`
	Count      int             `json:"count"`
}

func (t *ListBlogCategoriesTool) Execute(_ context.Context, _ any) (any, error) {
	cats := t.svc.Categories()
	return &CategoriesResult{Categories: cats, Count: len(cats)}, nil
}
