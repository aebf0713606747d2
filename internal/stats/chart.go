package stats

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var seriesColors = []drawing.Color{
	chart.ColorBlue,
	chart.ColorRed,
	chart.ColorGreen,
	chart.ColorOrange,
	{R: 120, G: 60, B: 170, A: 255},
	{R: 40, G: 140, B: 140, A: 255},
}

// RenderChart writes a PNG line chart of population against generation.
func RenderChart(w io.Writer, histories []*History, width, height int) error {
	var series []chart.Series
	for i, h := range histories {
		if h.Generations() < 2 {
			continue
		}
		xs := make([]float64, h.Generations())
		ys := make([]float64, h.Generations())
		for gen, p := range h.Population {
			xs[gen] = float64(gen)
			ys[gen] = float64(p)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    h.Label,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: seriesColors[i%len(seriesColors)],
				StrokeWidth: 1.5,
			},
		})
	}
	if len(series) == 0 {
		return fmt.Errorf("no history with at least two generations to chart")
	}

	graph := chart.Chart{
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name:  "generation",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "population",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		Series: series,
	}
	if len(series) > 1 {
		graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render population chart: %w", err)
	}
	return nil
}
