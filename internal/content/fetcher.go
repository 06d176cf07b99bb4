package content

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/soochol/awsblogs/internal/blog"
	"github.com/soochol/awsblogs/internal/logger"
	"github.com/soochol/awsblogs/internal/metrics"
)

// Selectors tried in order; the first match wins.
var (
	contentSelectors = []string{"article", ".post-content", ".entry-content", ".blog-post-content", "main", "#main-content"}
	authorSelectors  = []string{".author", ".post-author", ".entry-author", `[rel="author"]`, ".byline"}
	dateSelectors    = []string{"time[datetime]", ".published", ".post-date", ".entry-date"}
)

// removeSelector matches page chrome dropped before conversion.
const removeSelector = "script, style, nav, header, footer, noscript, iframe"

// Options configures a Fetcher.
type Options struct {
	SitePrefix   string // URLs must start with this
	UserAgent    string
	MaxBodyBytes int64
}

// Fetcher downloads blog post pages and converts them to markdown.
type Fetcher struct {
	client     *http.Client
	opts       Options
	categories *blog.Registry
	converter  *md.Converter
}

// NewFetcher returns a Fetcher. categories resolves the category name of a
// post from its URL; a nil client gets a 30s timeout.
func NewFetcher(client *http.Client, categories *blog.Registry, opts Options) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if opts.SitePrefix == "" {
		opts.SitePrefix = blog.SiteURL
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 5 << 20
	}
	return &Fetcher{
		client:     client,
		opts:       opts,
		categories: categories,
		converter: md.NewConverter("", true, &md.Options{
			HeadingStyle:   "atx",
			CodeBlockStyle: "fenced",
		}),
	}
}

// ValidateURL reports ErrInvalidURL unless rawURL is an absolute URL under
// the configured site prefix.
func (f *Fetcher) ValidateURL(rawURL string) error {
	if !strings.HasPrefix(rawURL, f.opts.SitePrefix) {
		return fmt.Errorf("%w: %q must start with %s", blog.ErrInvalidURL, rawURL, f.opts.SitePrefix)
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("%w: %q is not an absolute URL", blog.ErrInvalidURL, rawURL)
	}
	return nil
}

// Fetch downloads rawURL and converts its main content to markdown.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	if err := f.ValidateURL(rawURL); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx).With(zap.String("url", rawURL))

	start := time.Now()
	doc, err := f.download(ctx, rawURL)
	metrics.ObserveFetch("page", start, err)
	if err != nil {
		log.Warn("page fetch failed", zap.Error(err))
		return nil, err
	}

	page := &Page{URL: rawURL}
	extractMetadata(doc, page)
	page.Category = f.categoryName(rawURL)

	doc.Find(removeSelector).Remove()
	page.Markdown = cleanMarkdown(f.converter.Convert(mainContent(doc)))

	log.Debug("page converted", zap.Int("markdown_bytes", len(page.Markdown)), zap.Duration("elapsed", time.Since(start)))
	return page, nil
}

func (f *Fetcher) download(ctx context.Context, rawURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", blog.ErrFetchFailure, err)
	}
	if f.opts.UserAgent != "" {
		req.Header.Set("User-Agent", f.opts.UserAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %v", blog.ErrFetchFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: HTTP %d: %s", blog.ErrFetchFailure, resp.StatusCode, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, f.opts.MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: parse HTML: %v", blog.ErrFetchFailure, err)
	}
	return doc, nil
}

// categoryName resolves the path segment after /blogs/ to a category name.
func (f *Fetcher) categoryName(rawURL string) string {
	if f.categories == nil {
		return ""
	}
	_, rest, ok := strings.Cut(rawURL, "/blogs/")
	if !ok {
		return ""
	}
	id, _, _ := strings.Cut(rest, "/")
	if c, ok := f.categories.Get(id); ok {
		return c.Name
	}
	return ""
}

func mainContent(doc *goquery.Document) *goquery.Selection {
	for _, sel := range contentSelectors {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			return s
		}
	}
	if body := doc.Find("body"); body.Length() > 0 {
		return body
	}
	return doc.Selection
}

func extractMetadata(doc *goquery.Document, page *Page) {
	if h1 := firstText(doc, "h1"); h1 != "" {
		page.Title = h1
	} else {
		page.Title = firstText(doc, "title")
	}

	for _, sel := range authorSelectors {
		if a := firstText(doc, sel); a != "" {
			page.Author = a
			break
		}
	}
	if page.Author == "" {
		page.Author = firstAttr(doc, `meta[name="author"]`, "content")
	}
	if page.Author == "" {
		page.Author = firstAttr(doc, `meta[property="article:author"]`, "content")
	}

	for _, sel := range dateSelectors {
		s := doc.Find(sel).First()
		if s.Length() == 0 {
			continue
		}
		raw, ok := s.Attr("datetime")
		if !ok {
			raw = s.Text()
		}
		if t := ParseDate(raw); t != nil {
			page.Published = t
			break
		}
	}
	if page.Published == nil {
		page.Published = ParseDate(firstAttr(doc, `meta[property="article:published_time"]`, "content"))
	}
}

func firstText(doc *goquery.Document, sel string) string {
	return strings.Join(strings.Fields(doc.Find(sel).First().Text()), " ")
}

func firstAttr(doc *goquery.Document, sel, attr string) string {
	v, _ := doc.Find(sel).First().Attr(attr)
	return strings.TrimSpace(v)
}

var blankRuns = regexp.MustCompile(`\n[ \t]*(\n[ \t]*)+\n`)

// cleanMarkdown collapses runs of blank lines and strips leading indentation
// outside fenced code blocks.
func cleanMarkdown(s string) string {
	lines := strings.Split(s, "\n")
	inFence := false
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			lines[i] = trimmed
			continue
		}
		if !inFence {
			lines[i] = trimmed
		}
	}
	s = strings.Join(lines, "\n")
	s = blankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
