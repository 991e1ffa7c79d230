package util

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"slp-server/models"
)

// PlotCategoryBreakdown renders a bar chart of places per category into an
// HTML file, handy for eyeballing what an import produced.
func PlotCategoryBreakdown(places []models.Place, outputPath string) error {
	counts := make(map[string]int)
	for _, place := range places {
		counts[place.Category]++
	}

	categories := make([]string, 0, len(counts))
	for category := range counts {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	values := make([]opts.BarData, 0, len(categories))
	for _, category := range categories {
		values = append(values, opts.BarData{Value: counts[category]})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Places by Category",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Places by category (%d total)", len(places)),
		}),
	)
	bar.SetXAxis(categories).AddSeries("places", values)

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create chart file %q: %w", outputPath, err)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
