package tools

import "github.com/soochol/awsblogs/internal/services"

// RegisterBlogTools registers the five blog tools backed by svc.
func RegisterBlogTools(r *Registry, svc *services.BlogService) {
	r.Register(&ReadBlogPostTool{svc: svc})
	r.Register(&SearchBlogPostsTool{svc: svc})
	r.Register(&ListBlogCategoriesTool{svc: svc})
	r.Register(&RecentPostsTool{svc: svc})
	r.Register(&RSSFeedTool{svc: svc})
}
