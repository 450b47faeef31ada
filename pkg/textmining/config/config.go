package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bellatrix11176/customer-support-text-mining/pkg/textmining/internalerr"
)

// DefaultStopwordSourceURL is the standard English stopword list of the
// NLTK project, published one word per line.
const DefaultStopwordSourceURL = "https://raw.githubusercontent.com/nltk/nltk_data/gh-pages/packages/corpora/stopwords/english"

// Config holds the pipeline configuration. All paths are resolved against
// ProjectRoot so the pipeline can run against arbitrary locations in tests.
type Config struct {
	ProjectRoot string `yaml:"project_root"`
	DataDir     string `yaml:"data_dir"`
	OutputDir   string `yaml:"output_dir"`
	InputFile   string `yaml:"input_file"`

	Threshold      int `yaml:"threshold"`
	MinTokenLength int `yaml:"min_token_length"`

	StopwordCachePath string `yaml:"stopword_cache_path"`
	StopwordSourceURL string `yaml:"stopword_source_url"`
}

// Default returns the documented defaults: threshold 250, minimum token
// length 4, data/ and output/ under the current directory.
func Default() Config {
	return Config{
		ProjectRoot:       ".",
		DataDir:           "data",
		OutputDir:         "output",
		InputFile:         "customer_support_text_corpus.txt",
		Threshold:         250,
		MinTokenLength:    4,
		StopwordCachePath: filepath.Join("data", "stopwords.db"),
		StopwordSourceURL: DefaultStopwordSourceURL,
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the pipeline cannot run with.
func (c Config) Validate() error {
	if c.Threshold < 0 {
		return fmt.Errorf("%w: threshold must be >= 0, got %d", internalerr.ErrInvalidConfig, c.Threshold)
	}
	if c.MinTokenLength < 1 {
		return fmt.Errorf("%w: min_token_length must be >= 1, got %d", internalerr.ErrInvalidConfig, c.MinTokenLength)
	}
	if c.InputFile == "" {
		return fmt.Errorf("%w: input_file must not be empty", internalerr.ErrInvalidConfig)
	}
	return nil
}

// InputPath resolves the corpus file location.
func (c Config) InputPath() string {
	return filepath.Join(c.ProjectRoot, c.DataDir, c.InputFile)
}

// OutputPath resolves the artifact directory.
func (c Config) OutputPath() string {
	return filepath.Join(c.ProjectRoot, c.OutputDir)
}

// CachePath resolves the stopword cache location.
func (c Config) CachePath() string {
	return filepath.Join(c.ProjectRoot, c.StopwordCachePath)
}
