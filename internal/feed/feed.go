package feed

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"

	"github.com/soochol/awsblogs/internal/blog"
	"github.com/soochol/awsblogs/internal/logger"
	"github.com/soochol/awsblogs/internal/metrics"
)

// Fetcher retrieves one category's feed as normalized posts.
type Fetcher interface {
	Fetch(ctx context.Context, category blog.Category) ([]blog.Post, error)
}

// RSSFetcher fetches feeds over HTTP and parses them with gofeed. Every call
// hits the network.
type RSSFetcher struct {
	client    *http.Client
	userAgent string
}

// NewRSSFetcher returns a fetcher using client for every request. A nil
// client gets a 30s timeout.
func NewRSSFetcher(client *http.Client, userAgent string) *RSSFetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &RSSFetcher{client: client, userAgent: userAgent}
}

func (f *RSSFetcher) Fetch(ctx context.Context, category blog.Category) ([]blog.Post, error) {
	log := logger.FromContext(ctx).With(zap.String("category", category.ID))
	start := time.Now()

	fp := gofeed.NewParser()
	fp.Client = f.client
	if f.userAgent != "" {
		fp.UserAgent = f.userAgent
	}

	parsed, err := fp.ParseURLWithContext(category.FeedURL, ctx)
	metrics.ObserveFetch("feed", start, err)
	if err != nil {
		log.Warn("feed fetch failed", zap.String("url", category.FeedURL), zap.Error(err))
		return nil, fmt.Errorf("%w: feed %s: %v", blog.ErrFetchFailure, category.ID, err)
	}

	posts := Normalize(parsed.Items, category.ID)
	log.Debug("feed fetched", zap.Int("items", len(parsed.Items)), zap.Int("posts", len(posts)),
		zap.Duration("elapsed", time.Since(start)))
	return posts, nil
}

// Normalize converts feed items into posts for categoryID. Items without a
// link and repeated links are dropped. Posts are ordered newest first when
// every item carries a parseable date; otherwise the feed order is kept.
func Normalize(items []*gofeed.Item, categoryID string) []blog.Post {
	posts := make([]blog.Post, 0, len(items))
	seen := make(map[string]bool, len(items))
	allDated := true

	for _, item := range items {
		if item == nil {
			continue
		}
		link := strings.TrimSpace(item.Link)
		if link == "" || seen[link] {
			continue
		}
		seen[link] = true

		var pub *time.Time
		switch {
		case item.PublishedParsed != nil:
			t := item.PublishedParsed.UTC()
			pub = &t
		case item.UpdatedParsed != nil:
			t := item.UpdatedParsed.UTC()
			pub = &t
		default:
			allDated = false
		}

		desc := item.Description
		if strings.TrimSpace(desc) == "" {
			desc = item.Content
		}

		posts = append(posts, blog.Post{
			Title:     strings.TrimSpace(item.Title),
			URL:       link,
			Author:    authorName(item),
			Published: pub,
			Category:  categoryID,
			Summary:   StripHTML(desc),
			Tags:      item.Categories,
		})
	}

	if allDated {
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].Published.After(*posts[j].Published)
		})
	}
	return posts
}

func authorName(item *gofeed.Item) string {
	if item.Author != nil && strings.TrimSpace(item.Author.Name) != "" {
		return strings.TrimSpace(item.Author.Name)
	}
	for _, a := range item.Authors {
		if a != nil && strings.TrimSpace(a.Name) != "" {
			return strings.TrimSpace(a.Name)
		}
	}
	return ""
}
