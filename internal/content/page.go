package content

import (
	"fmt"
	"strings"
	"time"
)

// Page is a converted blog post. Metadata fields are empty or nil when the
// page does not expose them.
type Page struct {
	URL       string     `json:"url"`
	Title     string     `json:"title,omitempty"`
	Author    string     `json:"author,omitempty"`
	Published *time.Time `json:"published,omitempty"`
	Category  string     `json:"category,omitempty"`
	Markdown  string     `json:"-"`
}

// Document renders the page as markdown with a metadata header, the text the
// pagination offsets refer to.
func (p *Page) Document() string {
	var b strings.Builder
	title := p.Title
	if title == "" {
		title = "AWS Blog Post"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	if p.Author != "" {
		fmt.Fprintf(&b, "**Author:** %s\n", p.Author)
	}
	if p.Published != nil {
		fmt.Fprintf(&b, "**Published:** %s\n", p.Published.Format("2006-01-02"))
	}
	if p.Category != "" {
		fmt.Fprintf(&b, "**Category:** %s\n", p.Category)
	}
	fmt.Fprintf(&b, "**URL:** %s\n\n---\n\n", p.URL)
	b.WriteString(p.Markdown)
	return b.String()
}
