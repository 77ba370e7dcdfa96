package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Decoder     DecoderConfig     `yaml:"decoder"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	Analysis    AnalysisConfig    `yaml:"analysis"`
	Performance PerformanceConfig `yaml:"performance"`
}

type DecoderConfig struct {
	// Backend selects how recognized text is produced: "process" runs a
	// recognizer helper binary, "server" connects to a running STT server.
	Backend    string            `yaml:"backend"`
	Command    string            `yaml:"command"`
	ModelPaths map[string]string `yaml:"model_paths"`
	ServerURL  string            `yaml:"server_url"`
	SampleRate int               `yaml:"sample_rate"`
	ChunkBytes int               `yaml:"chunk_bytes"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type SummarizerConfig struct {
	Model      string   `yaml:"model"`
	APIKeys    []string `yaml:"api_keys"`
	MinChars   int      `yaml:"min_chars"`
	ChunkChars int      `yaml:"chunk_chars"`
}

// CategoryConfig overrides one highlight category's keyword list.
// Declaration order is classification order, so categories are a list,
// not a map.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

type AnalysisConfig struct {
	Categories     []CategoryConfig `yaml:"categories"`
	MaxTopics      int              `yaml:"max_topics"`
	MaxActionItems int              `yaml:"max_action_items"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads and validates a YAML config file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Default returns a config with every default applied, for running without
// a config file
func Default() *Config {
	cfg := &Config{}
	// Validate on a zero config only fills defaults
	_ = cfg.Validate()
	return cfg
}

func (c *Config) Validate() error {
	switch c.Decoder.Backend {
	case "":
		c.Decoder.Backend = "process"
	case "process", "server":
	default:
		return fmt.Errorf("decoder.backend must be \"process\" or \"server\", got %q", c.Decoder.Backend)
	}

	if c.Decoder.Backend == "server" && c.Decoder.ServerURL == "" {
		c.Decoder.ServerURL = "ws://localhost:2700"
	}
	if c.Decoder.Command == "" {
		c.Decoder.Command = "vosk-transcriber"
	}
	if c.Decoder.ModelPaths == nil {
		c.Decoder.ModelPaths = map[string]string{
			"en": "models/vosk-model-small-en-us-0.15",
			"hi": "models/vosk-model-hi-0.22",
		}
	}
	if c.Decoder.SampleRate == 0 {
		c.Decoder.SampleRate = 16000
	}
	if c.Decoder.ChunkBytes == 0 {
		c.Decoder.ChunkBytes = 8000
	}

	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "outputs"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if c.Summarizer.Model == "" {
		c.Summarizer.Model = "gemini-2.5-flash"
	}
	if c.Summarizer.MinChars == 0 {
		c.Summarizer.MinChars = 80
	}
	if c.Summarizer.ChunkChars == 0 {
		c.Summarizer.ChunkChars = 3000
	}

	if c.Analysis.MaxTopics == 0 {
		c.Analysis.MaxTopics = 5
	}
	if c.Analysis.MaxActionItems == 0 {
		c.Analysis.MaxActionItems = 20
	}

	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}

	return nil
}
