package blog

import "errors"

var (
	// ErrInvalidInput signals malformed or out-of-range arguments.
	ErrInvalidInput = errors.New("invalid input")
	// ErrCategoryNotFound signals a category identifier outside the registry.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrInvalidURL signals a URL that does not belong to the blog site.
	ErrInvalidURL = errors.New("invalid url")
	// ErrFetchFailure signals a network or upstream parse error.
	ErrFetchFailure = errors.New("fetch failure")
)
