// Package textmining is the facade over the batch pipeline: raw corpus →
// normalize → tokenize → filter → count → emit artifacts. Every stage is a
// pure function of its input except the report emitter, which owns all
// side effects, and the one-time stopword corpus fetch.
package textmining

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bellatrix11176/customer-support-text-mining/pkg/textmining/config"
	"github.com/bellatrix11176/customer-support-text-mining/pkg/textmining/freq"
	"github.com/bellatrix11176/customer-support-text-mining/pkg/textmining/ingest"
	"github.com/bellatrix11176/customer-support-text-mining/pkg/textmining/internalerr"
	"github.com/bellatrix11176/customer-support-text-mining/pkg/textmining/normalize"
	"github.com/bellatrix11176/customer-support-text-mining/pkg/textmining/report"
	"github.com/bellatrix11176/customer-support-text-mining/pkg/textmining/stoplist"
)

// Options configures a Miner.
type Options struct {
	Config   config.Config
	Provider stoplist.Provider // base stopword corpus source
	Renderer report.Renderer   // nil selects the go-chart bar renderer
}

// Miner runs the pipeline once per Run call.
type Miner struct {
	cfg      config.Config
	provider stoplist.Provider
	renderer report.Renderer
}

// New creates a Miner with the given dependencies.
func New(opts Options) *Miner {
	return &Miner{
		cfg:      opts.Config,
		provider: opts.Provider,
		renderer: opts.Renderer,
	}
}

// Summary reports what a run did.
type Summary struct {
	report.Result

	InputPath      string
	FilteredTokens int // tokens surviving the stopword filter
}

// Run executes one batch run. Fatal conditions (missing input, unavailable
// stopword corpus, invalid config) abort before any artifact is produced;
// artifact write failures are collected into the Summary and joined into
// the returned error without stopping the remaining writes.
func (m *Miner) Run(ctx context.Context) (Summary, error) {
	if err := m.cfg.Validate(); err != nil {
		return Summary{}, err
	}

	inputPath, err := filepath.Abs(m.cfg.InputPath())
	if err != nil {
		return Summary{}, fmt.Errorf("resolve input path: %w", err)
	}
	projectRoot, err := filepath.Abs(m.cfg.ProjectRoot)
	if err != nil {
		return Summary{}, fmt.Errorf("resolve project root: %w", err)
	}

	if _, err := os.Stat(inputPath); err != nil {
		return Summary{}, fmt.Errorf(
			"%w: %s (expected corpus under %s, project root %s)",
			internalerr.ErrInputMissing, inputPath,
			filepath.Join(projectRoot, m.cfg.DataDir), projectRoot)
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return Summary{}, fmt.Errorf("read input: %w", err)
	}

	set, err := stoplist.Build(ctx, m.provider)
	if err != nil {
		return Summary{}, err
	}

	// Invalid byte sequences are replaced, never fatal.
	text := normalize.Text(strings.ToValidUTF8(string(raw), "�"))
	tokens := stoplist.Filter(ingest.Tokenize(text), set, m.cfg.MinTokenLength)
	table := freq.Count(tokens)

	emitter := report.NewEmitter(report.Options{
		OutputDir: m.cfg.OutputPath(),
		Threshold: m.cfg.Threshold,
		Renderer:  m.renderer,
	})
	res, err := emitter.Emit(table, report.Meta{
		ProjectRoot: projectRoot,
		InputPath:   inputPath,
	})

	return Summary{
		Result:         res,
		InputPath:      inputPath,
		FilteredTokens: len(tokens),
	}, err
}

// Frequencies runs only the in-memory half of the pipeline, returning the
// frequency table for the given raw text without touching the filesystem.
func (m *Miner) Frequencies(ctx context.Context, raw string) (freq.Table, error) {
	set, err := stoplist.Build(ctx, m.provider)
	if err != nil {
		return nil, err
	}
	text := normalize.Text(strings.ToValidUTF8(raw, "�"))
	tokens := stoplist.Filter(ingest.Tokenize(text), set, m.cfg.MinTokenLength)
	return freq.Count(tokens), nil
}
