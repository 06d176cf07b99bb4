package blog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		start     int
		max       int
		want      string
		wantStart int
		more      bool
		next      int
	}{
		{"whole text", "hello world", 0, 100, "hello world", 0, false, 11},
		{"exact fit", "hello", 0, 5, "hello", 0, false, 5},
		{"first chunk", "hello world", 0, 5, "hello", 0, true, 5},
		{"middle chunk", "hello world", 5, 3, " wo", 5, true, 8},
		{"last chunk", "hello world", 8, 10, "rld", 8, false, 11},
		{"negative start", "hello", -4, 2, "he", 0, true, 2},
		{"start at end", "hello", 5, 2, "", 5, false, 5},
		{"start past end", "hello", 99, 2, "", 5, false, 5},
		{"empty text", "", 0, 10, "", 0, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunk, err := Paginate(tt.text, tt.start, tt.max)
			require.NoError(t, err)
			assert.Equal(t, tt.want, chunk.Content)
			assert.Equal(t, tt.wantStart, chunk.StartIndex)
			assert.Equal(t, tt.more, chunk.HasMore)
			assert.Equal(t, tt.next, chunk.NextStartIndex)
			assert.Equal(t, len([]rune(tt.text)), chunk.TotalLength)
		})
	}
}

func TestPaginate_Runes(t *testing.T) {
	text := "héllo wörld ✓"
	chunk, err := Paginate(text, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, "éllo", chunk.Content)
	assert.Equal(t, 13, chunk.TotalLength)
	assert.True(t, chunk.HasMore)
}

func TestPaginate_LengthProperty(t *testing.T) {
	text := strings.Repeat("abcdefghij", 7)
	n := len(text)
	for start := -3; start <= n+3; start++ {
		for size := 1; size <= n+5; size += 7 {
			chunk, err := Paginate(text, start, size)
			require.NoError(t, err)

			clamped := min(max(start, 0), n)
			want := min(size, n-clamped)
			assert.Equal(t, want, len(chunk.Content))
			assert.Equal(t, clamped+want < n, chunk.HasMore)
			assert.Equal(t, clamped+want, chunk.NextStartIndex)
		}
	}
}

func TestPaginate_ChunksReassemble(t *testing.T) {
	text := strings.Repeat("markdown line\n", 40)
	var b strings.Builder
	start := 0
	for {
		chunk, err := Paginate(text, start, 37)
		require.NoError(t, err)
		b.WriteString(chunk.Content)
		if !chunk.HasMore {
			break
		}
		start = chunk.NextStartIndex
	}
	assert.Equal(t, text, b.String())
}

func TestPaginate_InvalidMaxLength(t *testing.T) {
	_, err := Paginate("text", 0, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = Paginate("text", 0, -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
