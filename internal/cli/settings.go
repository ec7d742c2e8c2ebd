package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/hupe1980/wordcliques"
)

// Settings is the effective configuration of one run after merging
// defaults, the config file and flags.
type Settings struct {
	ConfigFile string

	WordsFile  string
	OutputFile string

	CliqueSize       int
	Workers          int
	ChunkSize        int
	ProgressInterval time.Duration

	LogLevel  string
	LogFormat string

	Summary         string
	SummaryCodec    string
	MetricsTextfile string

	MemoryLimit string
	IOLimit     string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioRegion    string
	MinioSecure    bool

	PublishTable string

	// AWSRegion overrides the resolved region for s3:// locations and
	// DynamoDB publishing.
	AWSRegion string
}

// DefaultSettings returns the settings used when neither a flag nor the
// config file sets a value.
func DefaultSettings() Settings {
	return Settings{
		WordsFile:        "test.txt",
		OutputFile:       "results.txt",
		CliqueSize:       5,
		ProgressInterval: 5 * time.Second,
		LogLevel:         "info",
		LogFormat:        "text",
	}
}

// mergeFile copies every value set in fc into s unless the matching flag was
// given on the command line.
func (s *Settings) mergeFile(fc *FileConfig, changed func(flag string) bool) error {
	setStr := func(flag string, dst *string, v string) {
		if v != "" && !changed(flag) {
			*dst = v
		}
	}
	setInt := func(flag string, dst *int, v int) {
		if v != 0 && !changed(flag) {
			*dst = v
		}
	}

	setStr(flagWordsFile, &s.WordsFile, fc.WordsFile)
	setStr(flagOutputFile, &s.OutputFile, fc.OutputFile)
	setInt(flagCliqueSize, &s.CliqueSize, fc.CliqueSize)
	setInt(flagWorkers, &s.Workers, fc.Workers)
	setInt(flagChunkSize, &s.ChunkSize, fc.ChunkSize)
	setStr(flagSummary, &s.Summary, fc.Summary)
	setStr(flagSummaryCodec, &s.SummaryCodec, fc.SummaryCodec)
	setStr(flagMetricsTextfile, &s.MetricsTextfile, fc.MetricsTextfile)

	if fc.ProgressInterval != "" && !changed(flagProgressInterval) {
		d, err := time.ParseDuration(fc.ProgressInterval)
		if err != nil {
			return fmt.Errorf("progress_interval: %w", err)
		}
		s.ProgressInterval = d
	}

	if fc.Log != nil {
		setStr(flagLogLevel, &s.LogLevel, fc.Log.Level)
		setStr(flagLogFormat, &s.LogFormat, fc.Log.Format)
	}
	if fc.Limits != nil {
		setStr(flagMemoryLimit, &s.MemoryLimit, fc.Limits.Memory)
		setStr(flagIOLimit, &s.IOLimit, fc.Limits.IO)
	}
	if fc.Minio != nil {
		setStr(flagMinioEndpoint, &s.MinioEndpoint, fc.Minio.Endpoint)
		s.MinioAccessKey = fc.Minio.AccessKey
		s.MinioSecretKey = fc.Minio.SecretKey
		s.MinioRegion = fc.Minio.Region
		s.MinioSecure = fc.Minio.Secure
	}
	if fc.Publish != nil {
		setStr(flagPublishTable, &s.PublishTable, fc.Publish.Table)
		s.AWSRegion = fc.Publish.Region
	}
	return nil
}

// Logger builds the run logger writing to w.
func (s Settings) Logger(w io.Writer) (*wordcliques.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", s.LogLevel)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(s.LogFormat) {
	case "", "text":
		return wordcliques.NewLogger(slog.NewTextHandler(w, opts)), nil
	case "json":
		return wordcliques.NewLogger(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (want text or json)", s.LogFormat)
	}
}

// Limits returns the memory and IO limits in bytes; zero means unlimited.
func (s Settings) Limits() (memory, ioRate int64, err error) {
	if memory, err = parseSize(s.MemoryLimit); err != nil {
		return 0, 0, fmt.Errorf("memory limit: %w", err)
	}
	if ioRate, err = parseSize(s.IOLimit); err != nil {
		return 0, 0, fmt.Errorf("io limit: %w", err)
	}
	return memory, ioRate, nil
}

func parseSize(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, err
	}
	if n > 1<<62 {
		return 0, fmt.Errorf("%s is too large", s)
	}
	return int64(n), nil
}
