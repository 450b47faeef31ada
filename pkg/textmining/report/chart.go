package report

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/bellatrix11176/customer-support-text-mining/pkg/textmining/freq"
)

// Renderer draws a bar visualization of frequency rows. Abstracted so the
// pipeline can be tested without a graphics backend.
type Renderer interface {
	RenderBars(w io.Writer, title string, rows freq.Table) error
}

// BarRenderer renders a PNG bar chart via go-chart: one bar per word,
// rotated x labels, counts on the y axis.
type BarRenderer struct{}

// RenderBars implements Renderer. rows must be non-empty; the emitter
// substitutes a note artifact before ever calling with an empty set.
func (BarRenderer) RenderBars(w io.Writer, title string, rows freq.Table) error {
	bars := make([]chart.Value, 0, len(rows))
	for _, row := range rows {
		bars = append(bars, chart.Value{Label: row.Word, Value: float64(row.Total)})
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    1400,
		Height:   700,
		BarWidth: 18,
		XAxis: chart.Style{
			TextRotationDegrees: 60,
		},
		YAxis: chart.YAxis{
			Name: "total",
		},
		Bars: bars,
	}
	return graph.Render(chart.PNG, w)
}

// writeChart exports the bar chart of the thresholded subset, capped at 50
// rows for legibility. An empty subset gets a plain-text note instead of
// an empty chart; that is the documented fallback, not an error.
func (e *Emitter) writeChart(thresholded freq.Table) (string, error) {
	if len(thresholded) == 0 {
		return writeArtifact(e.path("chart_note.txt"), func(w io.Writer) error {
			_, err := fmt.Fprintf(w,
				"No tokens met the threshold of %d, so no chart was generated.\n", e.threshold)
			return err
		})
	}

	path := e.path(fmt.Sprintf("top_tokens_ge_%d.png", e.threshold))
	title := fmt.Sprintf("Top tokens (frequency >= %d)", e.threshold)
	return writeArtifact(path, func(w io.Writer) error {
		return e.renderer.RenderBars(w, title, thresholded.Head(chartRows))
	})
}
