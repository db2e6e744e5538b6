package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	url string
	err error
}

func (f *fakeSearcher) RandomPhoto(ctx context.Context, query string) (string, error) {
	return f.url, f.err
}

type fakePublisher struct {
	uploadID  string
	uploadErr error
	postID    string
	postErr   error

	uploadedPath string
	postedText   string
	postedMedia  string
}

func (f *fakePublisher) UploadMedia(ctx context.Context, path string) (string, error) {
	f.uploadedPath = path
	return f.uploadID, f.uploadErr
}

func (f *fakePublisher) PostTweet(ctx context.Context, text, mediaID string) (string, error) {
	f.postedText = text
	f.postedMedia = mediaID
	return f.postID, f.postErr
}

func TestPipelineFullRun(t *testing.T) {
	imageServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "jpeg-bytes")
	}))
	defer imageServer.Close()

	dir := t.TempDir()
	publisher := &fakePublisher{uploadID: "media-1", postID: "tweet-1"}
	pipeline := NewPostPipeline(&fakeSearcher{url: imageServer.URL}, publisher, dir)

	id, err := pipeline.Run(context.Background(), "beach day", "beach")
	require.NoError(t, err)
	assert.Equal(t, "tweet-1", id)

	wantPath := filepath.Join(dir, ScheduledImageName)
	assert.Equal(t, wantPath, publisher.uploadedPath)
	assert.Equal(t, "media-1", publisher.postedMedia)
	assert.Equal(t, "beach day", publisher.postedText)

	data, err := os.ReadFile(wantPath)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
}

func TestPipelineTextOnlyWhenNoImageURL(t *testing.T) {
	publisher := &fakePublisher{postID: "tweet-2"}
	pipeline := NewPostPipeline(&fakeSearcher{url: ""}, publisher, t.TempDir())

	id, err := pipeline.Run(context.Background(), "no pictures today", "travel")
	require.NoError(t, err)
	assert.Equal(t, "tweet-2", id)
	assert.Empty(t, publisher.uploadedPath)
	assert.Empty(t, publisher.postedMedia)
}

func TestPipelineStageTagging(t *testing.T) {
	brokenImageServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer brokenImageServer.Close()

	imageServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "jpeg-bytes")
	}))
	defer imageServer.Close()

	tests := []struct {
		name      string
		searcher  ImageSearcher
		publisher *fakePublisher
		wantStage string
	}{
		{
			name:      "image search failure",
			searcher:  &fakeSearcher{err: errors.New("service down")},
			publisher: &fakePublisher{},
			wantStage: StageFetchImage,
		},
		{
			name:      "image download failure",
			searcher:  &fakeSearcher{url: brokenImageServer.URL},
			publisher: &fakePublisher{},
			wantStage: StageDownloadImage,
		},
		{
			name:      "upload failure",
			searcher:  &fakeSearcher{url: imageServer.URL},
			publisher: &fakePublisher{uploadErr: errors.New("media rejected")},
			wantStage: StageUploadMedia,
		},
		{
			name:      "post failure",
			searcher:  &fakeSearcher{url: imageServer.URL},
			publisher: &fakePublisher{uploadID: "m", postErr: errors.New("duplicate status")},
			wantStage: StagePostTweet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pipeline := NewPostPipeline(tt.searcher, tt.publisher, t.TempDir())
			_, err := pipeline.Run(context.Background(), "text", "travel")
			require.Error(t, err)

			var stageErr *PipelineError
			require.ErrorAs(t, err, &stageErr)
			assert.Equal(t, tt.wantStage, stageErr.Stage)
		})
	}
}
