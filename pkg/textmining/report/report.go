// Package report turns a frequency table into the run's artifact set: two
// CSV exports, an xlsx workbook, a top-20 text summary, a bar chart (or a
// fallback note when nothing clears the threshold), and a run log.
package report

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/bellatrix11176/customer-support-text-mining/pkg/textmining/freq"
)

const (
	summaryRows = 20
	chartRows   = 50
)

// Emitter writes all artifacts for a run into one output directory. It is
// the only pipeline stage with side effects.
type Emitter struct {
	outDir    string
	threshold int
	renderer  Renderer
	now       func() time.Time
	entropy   *ulid.MonotonicEntropy
}

// Options configures an Emitter.
type Options struct {
	OutputDir string
	Threshold int
	Renderer  Renderer
	Now       func() time.Time // defaults to time.Now
}

// NewEmitter creates an emitter. A nil Renderer falls back to the go-chart
// bar renderer.
func NewEmitter(opts Options) *Emitter {
	r := opts.Renderer
	if r == nil {
		r = BarRenderer{}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Emitter{
		outDir:    opts.OutputDir,
		threshold: opts.Threshold,
		renderer:  r,
		now:       now,
		entropy:   ulid.Monotonic(rand.Reader, 0),
	}
}

// Meta carries run metadata into the run log.
type Meta struct {
	ProjectRoot string
	InputPath   string
}

// Result reports what a run produced. Written lists artifact paths in the
// order they were written; Errors holds per-artifact failures (an artifact
// appears in exactly one of the two).
type Result struct {
	RunID            string
	UniqueTokens     int
	ThresholdedCount int
	Written          []string
	Errors           []error
}

// Err joins the per-artifact failures, or returns nil when every artifact
// was written.
func (r Result) Err() error {
	return errors.Join(r.Errors...)
}

// Emit writes the full artifact set for the table. Each artifact write is
// independent: a failure is recorded and later artifacts are still
// attempted. Only the inability to create the output directory aborts.
func (e *Emitter) Emit(table freq.Table, meta Meta) (Result, error) {
	if err := os.MkdirAll(e.outDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create output directory: %w", err)
	}

	thresholded := table.Threshold(e.threshold)
	res := Result{
		RunID:            ulid.MustNew(ulid.Timestamp(e.now()), e.entropy).String(),
		UniqueTokens:     len(table),
		ThresholdedCount: len(thresholded),
	}

	res.record(e.writeCSV(e.path("token_frequencies_all.csv"), table))
	res.record(e.writeCSV(e.path(fmt.Sprintf("token_frequencies_ge_%d.csv", e.threshold)), thresholded))
	res.record(e.writeWorkbook(e.path("text_mining_results.xlsx"), table, thresholded))
	res.record(e.writeSummary(e.path("summary_top20.txt"), table, thresholded))
	res.record(e.writeChart(thresholded))
	res.record(e.writeRunLog(e.path("run_log.txt"), table, res, meta))

	return res, res.Err()
}

func (e *Emitter) path(name string) string {
	return filepath.Join(e.outDir, name)
}

func (r *Result) record(path string, err error) {
	if err != nil {
		r.Errors = append(r.Errors, err)
		return
	}
	r.Written = append(r.Written, path)
}

// writeArtifact scopes a file handle to one artifact: open, write, close,
// with release on every exit path.
func writeArtifact(path string, write func(io.Writer) error) (string, error) {
	f, err := os.Create(path)
	if err != nil {
		return path, fmt.Errorf("create %s: %w", path, err)
	}
	werr := write(f)
	cerr := f.Close()
	if werr != nil {
		return path, fmt.Errorf("write %s: %w", path, werr)
	}
	if cerr != nil {
		return path, fmt.Errorf("close %s: %w", path, cerr)
	}
	return path, nil
}
