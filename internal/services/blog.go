package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/soochol/awsblogs/internal/blog"
	"github.com/soochol/awsblogs/internal/content"
	"github.com/soochol/awsblogs/internal/feed"
	"github.com/soochol/awsblogs/internal/logger"
)

// Limits and defaults for the blog operations.
const (
	DefaultSearchLimit = 10
	DefaultRecentLimit = 10
	MaxRecentLimit     = 50
	DefaultFeedLimit   = 20
	MaxFeedLimit       = 100
	DefaultReadLength  = 5000
	MaxReadLength      = 1_000_000
)

// PageSource downloads and converts a single blog post.
type PageSource interface {
	Fetch(ctx context.Context, rawURL string) (*content.Page, error)
}

// SearchResponse is the outcome of a search. Errors lists categories that
// could not be fetched; their posts are missing from Results.
type SearchResponse struct {
	Results []blog.SearchResult
	Errors  []feed.CategoryError
}

// RecentResponse is the outcome of a recent-posts listing.
type RecentResponse struct {
	Posts  []blog.Post
	Errors []feed.CategoryError
}

// ReadResponse is one page of a converted blog post.
type ReadResponse struct {
	Page  *content.Page
	Chunk blog.PageChunk
}

// BlogService answers the blog tool operations. It holds no mutable state;
// every call fetches fresh data.
type BlogService struct {
	categories  *blog.Registry
	feeds       feed.Fetcher
	pages       PageSource
	concurrency int
}

func NewBlogService(categories *blog.Registry, feeds feed.Fetcher, pages PageSource, concurrency int) *BlogService {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &BlogService{
		categories:  categories,
		feeds:       feeds,
		pages:       pages,
		concurrency: concurrency,
	}
}

// Categories returns every known category in registry order.
func (s *BlogService) Categories() []blog.Category {
	return s.categories.List()
}

// Category looks up a single category.
func (s *BlogService) Category(id string) (blog.Category, error) {
	return s.categories.Lookup(id)
}

// Search ranks posts matching query. An empty categoryID searches every
// category.
func (s *BlogService) Search(ctx context.Context, query, categoryID string, limit int) (*SearchResponse, error) {
	// Validate before touching the network.
	if len(blog.Tokenize(query)) == 0 {
		return nil, fmt.Errorf("%w: query must not be empty", blog.ErrInvalidInput)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", blog.ErrInvalidInput, limit)
	}

	posts, errs, err := s.collect(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	results, err := blog.Search(posts, query, limit)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("search completed",
		zap.String("query", query), zap.String("category", categoryID),
		zap.Int("candidates", len(posts)), zap.Int("results", len(results)))
	return &SearchResponse{Results: results, Errors: errs}, nil
}

// Recent returns the newest posts of one category, or of every category
// when categoryID is empty. Undated posts sort last.
func (s *BlogService) Recent(ctx context.Context, categoryID string, limit int) (*RecentResponse, error) {
	limit, err := clampLimit(limit, MaxRecentLimit)
	if err != nil {
		return nil, err
	}

	posts, errs, err := s.collect(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return blog.NewerThan(posts[i].Published, posts[j].Published)
	})
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return &RecentResponse{Posts: posts, Errors: errs}, nil
}

// Feed returns the normalized entries of one category's feed.
func (s *BlogService) Feed(ctx context.Context, categoryID string, limit int) (blog.Category, []blog.Post, error) {
	if categoryID == "" {
		return blog.Category{}, nil, fmt.Errorf("%w: category is required", blog.ErrInvalidInput)
	}
	cat, err := s.categories.Lookup(categoryID)
	if err != nil {
		return blog.Category{}, nil, err
	}
	limit, err = clampLimit(limit, MaxFeedLimit)
	if err != nil {
		return blog.Category{}, nil, err
	}

	posts, err := s.feeds.Fetch(ctx, cat)
	if err != nil {
		return blog.Category{}, nil, err
	}
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return cat, posts, nil
}

// Read fetches a blog post and returns the chunk of its markdown document
// that starts at start.
func (s *BlogService) Read(ctx context.Context, rawURL string, maxLength, start int) (*ReadResponse, error) {
	if maxLength <= 0 || maxLength >= MaxReadLength {
		return nil, fmt.Errorf("%w: max_length must be between 1 and %d, got %d", blog.ErrInvalidInput, MaxReadLength-1, maxLength)
	}

	page, err := s.pages.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	chunk, err := blog.Paginate(page.Document(), start, maxLength)
	if err != nil {
		return nil, err
	}
	return &ReadResponse{Page: page, Chunk: chunk}, nil
}

// collect gathers posts for one category or, with an empty ID, for all of
// them. Multi-category fetches tolerate partial failure and only fail when
// every category failed.
func (s *BlogService) collect(ctx context.Context, categoryID string) ([]blog.Post, []feed.CategoryError, error) {
	if categoryID != "" {
		cat, err := s.categories.Lookup(categoryID)
		if err != nil {
			return nil, nil, err
		}
		posts, err := s.feeds.Fetch(ctx, cat)
		if err != nil {
			return nil, nil, err
		}
		return posts, nil, nil
	}

	cats := s.categories.List()
	start := time.Now()
	res := feed.FetchAll(ctx, s.feeds, cats, s.concurrency)
	logger.FromContext(ctx).Debug("fetched all categories",
		zap.Int("categories", len(cats)), zap.Int("failed", len(res.Errors)),
		zap.Duration("elapsed", time.Since(start)))

	if len(cats) > 0 && len(res.Errors) == len(cats) {
		errs := make([]error, len(res.Errors))
		for i, e := range res.Errors {
			errs[i] = e
		}
		return nil, nil, fmt.Errorf("%w: all %d categories failed: %w", blog.ErrFetchFailure, len(cats), errors.Join(errs...))
	}
	return res.Posts, res.Errors, nil
}

func clampLimit(limit, ceiling int) (int, error) {
	if limit <= 0 {
		return 0, fmt.Errorf("%w: limit must be positive, got %d", blog.ErrInvalidInput, limit)
	}
	if limit > ceiling {
		return ceiling, nil
	}
	return limit, nil
}
