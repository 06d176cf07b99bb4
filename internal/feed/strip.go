package feed

import (
	"strings"

	"golang.org/x/net/html"
)

// skipTags are HTML elements whose text content should be excluded.
var skipTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"svg":      true,
}

// StripHTML reduces an HTML fragment (feed descriptions are usually one) to
// plain text with whitespace collapsed. Entities are decoded.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}

	tokenizer := html.NewTokenizer(strings.NewReader(s))
	var (
		text      strings.Builder
		skipDepth int
	)
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			// io.EOF or a parse error; either way return what we have.
			return strings.Join(strings.Fields(text.String()), " ")

		case html.StartTagToken:
			tn, _ := tokenizer.TagName()
			if skipTags[string(tn)] {
				skipDepth++
			}
			text.WriteByte(' ')

		case html.SelfClosingTagToken:
			text.WriteByte(' ')

		case html.EndTagToken:
			tn, _ := tokenizer.TagName()
			if skipTags[string(tn)] && skipDepth > 0 {
				skipDepth--
			}
			text.WriteByte(' ')

		case html.TextToken:
			if skipDepth == 0 {
				text.Write(tokenizer.Text())
			}
		}
	}
}
