package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"wander/internal/models"
)

type testValidator struct {
	validate *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

type testRenderer struct {
	lastName string
	lastData interface{}
}

func (r *testRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	r.lastName = name
	r.lastData = data
	_, err := io.WriteString(w, name)
	return err
}

func newTestEcho() (*echo.Echo, *testRenderer) {
	e := echo.New()
	e.Validator = &testValidator{validate: validator.New()}
	r := &testRenderer{}
	e.Renderer = r
	return e, r
}

// --- service fakes ---

type fakePipeline struct {
	id  string
	err error

	gotText  string
	gotQuery string
}

func (f *fakePipeline) Run(ctx context.Context, text, imageQuery string) (string, error) {
	f.gotText = text
	f.gotQuery = imageQuery
	return f.id, f.err
}

type fakeGenerator struct {
	tweet string
	err   error

	gotPrompt string
}

func (f *fakeGenerator) GenerateTweet(ctx context.Context, prompt string) (string, error) {
	f.gotPrompt = prompt
	return f.tweet, f.err
}

type fakeMessenger struct {
	err error

	gotUserID string
	gotText   string
}

func (f *fakeMessenger) SendDirectMessage(ctx context.Context, userID, text string) error {
	f.gotUserID = userID
	f.gotText = text
	return f.err
}

type fakeTimeline struct {
	tweets []models.Tweet
	err    error

	gotCount int
	calls    int
}

func (f *fakeTimeline) UserTimeline(ctx context.Context, count int) ([]models.Tweet, error) {
	f.gotCount = count
	f.calls++
	return f.tweets, f.err
}

type fakeUploader struct {
	mediaID string
	err     error

	gotPath string
}

func (f *fakeUploader) UploadMedia(ctx context.Context, path string) (string, error) {
	f.gotPath = path
	return f.mediaID, f.err
}
