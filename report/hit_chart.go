package report

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"lotofacil/domain/entities"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ChartConfig holds configuration for charts.
type ChartConfig struct {
	Title    string
	Subtitle string
	Width    string // e.g. "900px"
	Height   string
	Theme    string
	Color    string
}

// DefaultChartConfig returns default chart configuration.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Width:  "900px",
		Height: "500px",
		Theme:  "light",
		Color:  "#5470C6",
	}
}

// RenderHitDistribution writes an HTML bar chart of a hit distribution, one bar per hit count 0..15.
// Prize tiers are highlighted.
func RenderHitDistribution(distribution entities.HitDistribution, config ChartConfig, w io.Writer) error {
	bar := newBar(config, "Hits", "Draws")

	labels := make([]string, len(distribution))
	data := make([]opts.BarData, len(distribution))
	for hits, count := range distribution {
		labels[hits] = strconv.Itoa(hits)
		data[hits] = opts.BarData{Value: count}
		if hits >= entities.PrizeMinHits {
			data[hits].ItemStyle = &opts.ItemStyle{Color: "#3BA272"}
		}
	}

	bar.SetXAxis(labels).
		AddSeries("Draws", data).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show:     opts.Bool(true),
				Position: "top",
			}),
		)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// RenderFrequencies writes an HTML bar chart of number frequencies in the order given.
func RenderFrequencies(frequencies []entities.NumberFrequency, config ChartConfig, w io.Writer) error {
	bar := newBar(config, "Number", "Occurrences")

	labels := make([]string, len(frequencies))
	data := make([]opts.BarData, len(frequencies))
	for i, frequency := range frequencies {
		labels[i] = fmt.Sprintf("%02d", frequency.Number)
		data[i] = opts.BarData{Value: frequency.Count}
	}

	bar.SetXAxis(labels).
		AddSeries("Occurrences", data).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
		)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// WriteFile creates outputPath and hands it to render
func WriteFile(outputPath string, render func(io.Writer) error) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outputPath, err)
	}
	defer f.Close()

	return render(f)
}

func newBar(config ChartConfig, xName, yName string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: xName,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: yName,
		}),
		charts.WithColorsOpts(opts.Colors{
			config.Color,
		}),
	)
	return bar
}
