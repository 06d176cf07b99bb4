package feed

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/soochol/awsblogs/internal/blog"
	"github.com/soochol/awsblogs/internal/logger"
)

// CategoryError records a failed fetch for one category.
type CategoryError struct {
	Category string `json:"category"`
	Message  string `json:"error"`
	Err      error  `json:"-"`
}

func (e CategoryError) Error() string { return e.Category + ": " + e.Message }

func (e CategoryError) Unwrap() error { return e.Err }

// Result is the outcome of FetchAll. Posts are grouped by category in the
// order the categories were given.
type Result struct {
	Posts  []blog.Post
	Errors []CategoryError
}

// FetchAll fetches every category with at most concurrency requests in
// flight. A failing category does not abort the others; its error is
// reported in Result.Errors.
func FetchAll(ctx context.Context, f Fetcher, categories []blog.Category, concurrency int) Result {
	type slot struct {
		posts []blog.Post
		err   error
	}

	slots := make([]slot, len(categories))
	g, gCtx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, c := range categories {
		g.Go(func() error {
			posts, err := f.Fetch(gCtx, c)
			// Partial failure: record it in the slot, don't cancel siblings.
			slots[i] = slot{posts: posts, err: err}
			return nil
		})
	}
	_ = g.Wait() // errors are kept per slot, not returned

	var res Result
	for i, s := range slots {
		if s.err != nil {
			logger.FromContext(ctx).Warn("category skipped", zap.String("category", categories[i].ID), zap.Error(s.err))
			res.Errors = append(res.Errors, CategoryError{
				Category: categories[i].ID,
				Message:  s.err.Error(),
				Err:      s.err,
			})
			continue
		}
		res.Posts = append(res.Posts, s.posts...)
	}
	return res
}
