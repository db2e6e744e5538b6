package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wander/internal/models"
)

func TestWriteBackup(t *testing.T) {
	tweets := make([]models.Tweet, 100)
	for i := range tweets {
		tweets[i] = models.Tweet{
			Text:      fmt.Sprintf("tweet %d", i),
			CreatedAt: "Mon Jan 06 15:04:05 +0000 2025",
		}
	}

	path := filepath.Join(t.TempDir(), BackupFileName)
	require.NoError(t, WriteBackup(tweets, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 101)
	assert.Equal(t, []string{"text", "created_at"}, records[0])
	assert.Equal(t, "tweet 0", records[1][0])
	assert.Equal(t, "tweet 99", records[100][0])
}

func TestWriteBackupQuotesAwkwardText(t *testing.T) {
	tweets := []models.Tweet{
		{Text: "commas, everywhere, \"quoted\"\nand a newline", CreatedAt: "ts"},
	}

	path := filepath.Join(t.TempDir(), BackupFileName)
	require.NoError(t, WriteBackup(tweets, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, tweets[0].Text, records[1][0])
}

func TestWriteBackupTruncatesPriorFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), BackupFileName)

	many := []models.Tweet{{Text: "one"}, {Text: "two"}, {Text: "three"}}
	require.NoError(t, WriteBackup(many, path))

	few := []models.Tweet{{Text: "only"}}
	require.NoError(t, WriteBackup(few, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
