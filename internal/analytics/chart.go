package analytics

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"wander/internal/models"
)

// ChartFileName is the fixed static-asset name the rendered engagement
// chart is written to, overwriting any previous render.
const ChartFileName = "analytics.html"

// BuildChart renders a bar chart of retweet and like counts, one bar
// group per tweet in fetch order, and writes it to path.
func BuildChart(tweets []models.Tweet, path string) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Twitter Engagement Analytics"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Tweet Index"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Engagement Count"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1000px", Height: "500px"}),
	)

	indexes := make([]string, 0, len(tweets))
	retweets := make([]opts.BarData, 0, len(tweets))
	likes := make([]opts.BarData, 0, len(tweets))
	for i, tweet := range tweets {
		indexes = append(indexes, fmt.Sprintf("%d", i))
		retweets = append(retweets, opts.BarData{Value: tweet.Retweets})
		likes = append(likes, opts.BarData{Value: tweet.Likes})
	}
	bar.SetXAxis(indexes).
		AddSeries("Retweets", retweets).
		AddSeries("Likes", likes)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
