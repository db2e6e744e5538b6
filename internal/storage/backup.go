package storage

import (
	"encoding/csv"
	"fmt"
	"os"

	"wander/internal/models"
)

// BackupFileName is the fixed static-asset name tweet backups are
// written to, truncated on every backup request.
const BackupFileName = "tweets_backup.csv"

// WriteBackup writes tweets to a CSV file at path with a text,created_at
// header and one row per tweet in fetch order.
func WriteBackup(tweets []models.Tweet, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create backup file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"text", "created_at"}); err != nil {
		return err
	}
	for _, tweet := range tweets {
		if err := w.Write([]string{tweet.Text, tweet.CreatedAt}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
