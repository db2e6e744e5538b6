package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Pipeline stages, used to tag which step of a scheduled post failed.
const (
	StageFetchImage    = "fetch_image"
	StageDownloadImage = "download_image"
	StageUploadMedia   = "upload_media"
	StagePostTweet     = "post_tweet"
)

// ScheduledImageName is the fixed local filename the fetched image is
// written to before upload. Concurrent scheduled posts can overwrite it;
// that matches the single-user shape of this service.
const ScheduledImageName = "scheduled_travel_image.jpg"

// PipelineError reports a failure in one stage of the post pipeline.
type PipelineError struct {
	Stage string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error { return e.Err }

// ImageSearcher finds an image URL for a keyword query.
type ImageSearcher interface {
	RandomPhoto(ctx context.Context, query string) (string, error)
}

// TweetPublisher uploads media and creates tweets.
type TweetPublisher interface {
	UploadMedia(ctx context.Context, path string) (string, error)
	PostTweet(ctx context.Context, text, mediaID string) (string, error)
}

// PostPipeline runs the scheduled-tweet flow: fetch an image URL for the
// query, download it next to the other static assets, upload it to the
// platform, then create the tweet with the media attached. An image
// search that returns no URL skips straight to a text-only tweet; any
// hard failure aborts the run with its stage tagged.
type PostPipeline struct {
	Images    ImageSearcher
	Publisher TweetPublisher
	StaticDir string

	httpClient *http.Client
}

func NewPostPipeline(images ImageSearcher, publisher TweetPublisher, staticDir string) *PostPipeline {
	return &PostPipeline{
		Images:     images,
		Publisher:  publisher,
		StaticDir:  staticDir,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Run posts text with an image found for imageQuery and returns the new
// tweet's ID.
func (p *PostPipeline) Run(ctx context.Context, text, imageQuery string) (string, error) {
	imageURL, err := p.Images.RandomPhoto(ctx, imageQuery)
	if err != nil {
		return "", &PipelineError{Stage: StageFetchImage, Err: err}
	}

	mediaID := ""
	if imageURL != "" {
		imagePath := filepath.Join(p.StaticDir, ScheduledImageName)
		if err := p.download(ctx, imageURL, imagePath); err != nil {
			return "", &PipelineError{Stage: StageDownloadImage, Err: err}
		}
		mediaID, err = p.Publisher.UploadMedia(ctx, imagePath)
		if err != nil {
			return "", &PipelineError{Stage: StageUploadMedia, Err: err}
		}
	}

	tweetID, err := p.Publisher.PostTweet(ctx, text, mediaID)
	if err != nil {
		return "", &PipelineError{Stage: StagePostTweet, Err: err}
	}
	return tweetID, nil
}

func (p *PostPipeline) download(ctx context.Context, imageURL, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download image: unexpected status %d", resp.StatusCode)
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	return nil
}
