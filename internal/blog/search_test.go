package blog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestSearch_EC2Scenario(t *testing.T) {
	posts := []Post{
		{Title: "EC2 Update", Summary: "What changed this week", Published: date("2025-01-01")},
		{Title: "New EC2 Feature", Summary: "A feature launch", Published: date("2025-02-01")},
		{Title: "Security Patch", Summary: "Patch your hosts", Published: date("2025-03-01")},
	}

	results, err := Search(posts, "EC2", 5)
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, r := range results {
		assert.Greater(t, r.Score, 0.0)
		assert.Equal(t, []string{"ec2"}, r.MatchedTerms)
	}
	// Equal title weight, so the newer post wins.
	assert.Equal(t, "New EC2 Feature", results[0].Title)
	assert.Equal(t, "EC2 Update", results[1].Title)
}

func TestSearch_TitleOutweighsSummary(t *testing.T) {
	posts := []Post{
		{Title: "Storage news", Summary: "lambda lambda", Published: date("2025-05-01")},
		{Title: "Lambda tips", Summary: "functions", Published: date("2024-01-01")},
	}

	results, err := Search(posts, "lambda", 10)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Lambda tips", results[0].Title)
	assert.Equal(t, 3.0, results[0].Score)
	assert.Equal(t, 2.0, results[1].Score)
}

func TestSearch_AuthorMatches(t *testing.T) {
	posts := []Post{{Title: "Intro", Author: "Jeff Barr"}}

	results, err := Search(posts, "barr", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 1.0, results[0].Score)
}

func TestSearch_MultipleTerms(t *testing.T) {
	posts := []Post{
		{Title: "S3 and Lambda", Summary: "serverless storage"},
		{Title: "S3 pricing"},
	}

	results, err := Search(posts, "s3 lambda S3", 10)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "S3 and Lambda", results[0].Title)
	assert.Equal(t, 6.0, results[0].Score)
	assert.Equal(t, []string{"s3", "lambda"}, results[0].MatchedTerms)
}

func TestSearch_TiesKeepFeedOrder(t *testing.T) {
	posts := []Post{
		{Title: "ECS one", URL: "a"},
		{Title: "ECS two", URL: "b", Published: date("2020-01-01")},
		{Title: "ECS three", URL: "c"},
	}

	results, err := Search(posts, "ecs", 10)
	require.NoError(t, err)
	require.Len(t, results, 3)
	// Dated post first, undated ones in their original order.
	assert.Equal(t, "b", results[0].URL)
	assert.Equal(t, "a", results[1].URL)
	assert.Equal(t, "c", results[2].URL)
}

func TestSearch_Ordering(t *testing.T) {
	posts := []Post{
		{Title: "x", Summary: "rds", Published: date("2025-01-01")},
		{Title: "rds rds", Published: date("2023-01-01")},
		{Title: "rds", Published: date("2024-01-01")},
		{Title: "rds", Summary: "rds"},
		{Title: "y", Summary: "rds", Published: date("2025-06-01")},
	}

	results, err := Search(posts, "rds", 50)
	require.NoError(t, err)
	require.Len(t, results, 5)
	for i := 1; i < len(results); i++ {
		prev, cur := results[i-1], results[i]
		assert.GreaterOrEqual(t, cur.Score, 0.0)
		require.GreaterOrEqual(t, prev.Score, cur.Score)
		if prev.Score == cur.Score {
			assert.False(t, NewerThan(cur.Published, prev.Published), "index %d newer than predecessor", i)
		}
	}
}

func TestSearch_Limit(t *testing.T) {
	posts := make([]Post, 80)
	for i := range posts {
		posts[i] = Post{Title: "aurora"}
	}

	results, err := Search(posts, "aurora", 3)
	require.NoError(t, err)
	assert.Len(t, results, 3)

	results, err = Search(posts, "aurora", 500)
	require.NoError(t, err)
	assert.Len(t, results, MaxSearchLimit)
}

func TestSearch_NoMatches(t *testing.T) {
	results, err := Search([]Post{{Title: "Security Patch"}}, "ec2", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_InvalidInput(t *testing.T) {
	_, err := Search(nil, "", 5)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Search(nil, "   \t", 5)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Search(nil, "ec2", 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Search(nil, "ec2", -3)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestScore_Deterministic(t *testing.T) {
	p := Post{Title: "EKS on EKS", Summary: "eks", Author: "eks team"}
	s1, _ := Score(p, []string{"eks"})
	s2, _ := Score(p, []string{"eks"})
	assert.Equal(t, s1, s2)
	assert.Equal(t, 8.0, s1)

	zero, matched := Score(p, []string{"lambda"})
	assert.Zero(t, zero)
	assert.Empty(t, matched)
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"amazon", "bedrock"}, Tokenize("  Amazon   BEDROCK amazon "))
	assert.Empty(t, Tokenize("   "))
}
