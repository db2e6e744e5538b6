package analytics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wander/internal/models"
)

func sampleTweets(likes int) []models.Tweet {
	return []models.Tweet{
		{ID: "1", Text: "a", Retweets: 2, Likes: likes},
		{ID: "2", Text: "b", Retweets: 5, Likes: likes + 1},
		{ID: "3", Text: "c", Retweets: 0, Likes: likes + 2},
	}
}

func TestBuildChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), ChartFileName)
	require.NoError(t, BuildChart(sampleTweets(10), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Twitter Engagement Analytics")
	assert.Contains(t, content, "Retweets")
	assert.Contains(t, content, "Likes")
	assert.Contains(t, content, "Tweet Index")
	assert.Contains(t, content, "Engagement Count")
}

func TestBuildChartOverwritesPriorChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), ChartFileName)

	require.NoError(t, BuildChart(sampleTweets(10), path))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, BuildChart(sampleTweets(999), path))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.NotEqual(t, string(first), string(second))
	assert.Contains(t, string(second), "999")
}

func TestBuildChartEmptyTimeline(t *testing.T) {
	path := filepath.Join(t.TempDir(), ChartFileName)
	require.NoError(t, BuildChart(nil, path))

	_, err := os.Stat(path)
	require.NoError(t, err)
}
