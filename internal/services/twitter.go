package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/dghubble/oauth1"
	"golang.org/x/time/rate"

	"wander/internal/credentials"
	"wander/internal/models"
)

// TwitterClient wraps the Twitter REST API: v2 for creating tweets, v1.1
// for media upload, direct messages and the user timeline. Credentials
// are read from the store on every call, so a runtime key update takes
// effect on the next request without restarting the process.
type TwitterClient struct {
	creds         *credentials.Store
	apiBaseURL    string
	uploadBaseURL string
	limiter       *rate.Limiter
}

func NewTwitterClient(apiBaseURL, uploadBaseURL string, creds *credentials.Store) *TwitterClient {
	return &TwitterClient{
		creds:         creds,
		apiBaseURL:    apiBaseURL,
		uploadBaseURL: uploadBaseURL,
		// v1.1 user-auth endpoints allow ~900 req / 15 min
		limiter: rate.NewLimiter(rate.Every(time.Second), 3),
	}
}

// httpClient builds an OAuth1-signed client from the current credentials.
func (tc *TwitterClient) httpClient() *http.Client {
	apiKey, _ := tc.creds.Get(credentials.TwitterAPIKey)
	apiSecret, _ := tc.creds.Get(credentials.TwitterAPISecret)
	accessToken, _ := tc.creds.Get(credentials.TwitterAccessToken)
	tokenSecret, _ := tc.creds.Get(credentials.TwitterTokenSecret)

	cfg := oauth1.NewConfig(apiKey, apiSecret)
	token := oauth1.NewToken(accessToken, tokenSecret)
	client := cfg.Client(oauth1.NoContext, token)
	client.Timeout = 15 * time.Second
	return client
}

// PostTweet creates a tweet with text and, when mediaID is non-empty,
// the uploaded media attached. Returns the new tweet's ID.
func (tc *TwitterClient) PostTweet(ctx context.Context, text, mediaID string) (string, error) {
	if err := tc.limiter.Wait(ctx); err != nil {
		return "", err
	}

	tweet := models.TweetRequest{Text: text}
	if mediaID != "" {
		tweet.Media = &models.TweetMedia{MediaIDs: []string{mediaID}}
	}
	payload, err := json.Marshal(tweet)
	if err != nil {
		return "", fmt.Errorf("twitter: marshal tweet: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tc.apiBaseURL+"/2/tweets", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := tc.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("twitter: post tweet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", apiError("post tweet", resp)
	}

	var created models.TweetResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("twitter: decode tweet response: %w", err)
	}
	return created.Data.ID, nil
}

// UploadMedia uploads the file at path through the v1.1 simple upload
// endpoint and returns the media ID to attach to a tweet.
func (tc *TwitterClient) UploadMedia(ctx context.Context, path string) (string, error) {
	if err := tc.limiter.Wait(ctx); err != nil {
		return "", err
	}

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("twitter: open media file: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("media", filepath.Base(path))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("twitter: read media file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tc.uploadBaseURL+"/1.1/media/upload.json", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := tc.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("twitter: upload media: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apiError("upload media", resp)
	}

	var uploaded models.MediaUploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return "", fmt.Errorf("twitter: decode upload response: %w", err)
	}
	return uploaded.MediaIDString, nil
}

// SendDirectMessage sends text to the user with userID. A platform
// rejection comes back as a descriptive error; the handler layer turns
// it into a structured payload instead of a server failure.
func (tc *TwitterClient) SendDirectMessage(ctx context.Context, userID, text string) error {
	if err := tc.limiter.Wait(ctx); err != nil {
		return err
	}

	payload, err := json.Marshal(models.NewDirectMessageRequest(userID, text))
	if err != nil {
		return fmt.Errorf("twitter: marshal direct message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tc.apiBaseURL+"/1.1/direct_messages/events/new.json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := tc.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("twitter: send direct message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return apiError("send direct message", resp)
	}
	return nil
}

// UserTimeline fetches the authenticated account's most recent count
// tweets, newest first.
func (tc *TwitterClient) UserTimeline(ctx context.Context, count int) ([]models.Tweet, error) {
	if err := tc.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/1.1/statuses/user_timeline.json?count=%d", tc.apiBaseURL, count)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := tc.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("twitter: fetch timeline: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError("fetch timeline", resp)
	}

	var tweets []models.Tweet
	if err := json.NewDecoder(resp.Body).Decode(&tweets); err != nil {
		return nil, fmt.Errorf("twitter: decode timeline: %w", err)
	}
	return tweets, nil
}

// apiError extracts Twitter's error envelope when present so the caller
// sees the platform's own description rather than a bare status code.
func apiError(op string, resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var envelope models.APIError
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Errors) > 0 {
		first := envelope.Errors[0]
		return fmt.Errorf("twitter: %s: %s (code %d)", op, first.Message, first.Code)
	}
	return fmt.Errorf("twitter: %s: unexpected status %d", op, resp.StatusCode)
}
