package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"wander/internal/credentials"
)

// UnsplashClient fetches image URLs from the Unsplash search API.
type UnsplashClient struct {
	httpClient *http.Client
	creds      *credentials.Store
	baseURL    string
	limiter    *rate.Limiter
}

type randomPhotoResponse struct {
	URLs struct {
		Regular string `json:"regular"`
	} `json:"urls"`
}

func NewUnsplashClient(baseURL string, creds *credentials.Store) *UnsplashClient {
	return &UnsplashClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		creds:      creds,
		baseURL:    baseURL,
		// Demo-tier Unsplash cap is 50 req/hour
		limiter: rate.NewLimiter(rate.Every(72*time.Second), 5),
	}
}

// RandomPhoto returns the regular-size URL of a random photo matching
// query, or an empty string when the response carries no usable URL.
func (uc *UnsplashClient) RandomPhoto(ctx context.Context, query string) (string, error) {
	if err := uc.limiter.Wait(ctx); err != nil {
		return "", err
	}

	accessKey, _ := uc.creds.Get(credentials.UnsplashAccessKey)
	endpoint := fmt.Sprintf("%s/photos/random?query=%s&client_id=%s",
		uc.baseURL, url.QueryEscape(query), url.QueryEscape(accessKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := uc.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("unsplash: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unsplash: unexpected status %d", resp.StatusCode)
	}

	var photo randomPhotoResponse
	if err := json.NewDecoder(resp.Body).Decode(&photo); err != nil {
		return "", fmt.Errorf("unsplash: decode response: %w", err)
	}

	return photo.URLs.Regular, nil
}
