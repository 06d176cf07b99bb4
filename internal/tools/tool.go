package tools

import "context"

// Tool is one externally invocable operation. input is the decoded JSON
// argument object; the result must be JSON-serializable.
type Tool interface {
	Name() string
	Description() string
	InputSchema() map[string]any
	Execute(ctx context.Context, input any) (any, error)
}

// TextResult is implemented by results that have a preferred plain-text
// rendering (e.g. a markdown chunk) for transports that return text.
type TextResult interface {
	Text() string
}
