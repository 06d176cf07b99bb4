package blog

import "fmt"

// Paginate returns the chunk of text starting at start (in runes) that is at
// most maxLength runes long. A negative start is treated as 0.
func Paginate(text string, start, maxLength int) (PageChunk, error) {
	if maxLength <= 0 {
		return PageChunk{}, fmt.Errorf("%w: max_length must be positive, got %d", ErrInvalidInput, maxLength)
	}

	runes := []rune(text)
	total := len(runes)
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}

	end := total
	if maxLength < total-start {
		end = start + maxLength
	}

	return PageChunk{
		Content:        string(runes[start:end]),
		StartIndex:     start,
		TotalLength:    total,
		HasMore:        end < total,
		NextStartIndex: end,
	}, nil
}
