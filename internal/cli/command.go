// Package cli implements the wordcliques command line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const (
	flagConfig           = "config"
	flagWordsFile        = "wordsfile"
	flagOutputFile       = "outputfile"
	flagCliqueSize       = "clique-size"
	flagWorkers          = "workers"
	flagChunkSize        = "chunk-size"
	flagProgressInterval = "progress-interval"
	flagLogLevel         = "log-level"
	flagLogFormat        = "log-format"
	flagSummary          = "summary"
	flagSummaryCodec     = "summary-codec"
	flagMetricsTextfile  = "metrics-textfile"
	flagMemoryLimit      = "memory-limit"
	flagIOLimit          = "io-limit"
	flagMinioEndpoint    = "minio-endpoint"
	flagPublishTable     = "publish-table"
)

// NewCommand returns the root command. environ backs env.NAME in the config
// file and the MinIO credential fallback; nil means os.Environ().
func NewCommand(stdout, stderr io.Writer, environ []string) *cobra.Command {
	if environ == nil {
		environ = os.Environ()
	}
	s := DefaultSettings()

	cmd := &cobra.Command{
		Use:   "wordcliques",
		Short: "Find five words with 25 distinct letters",
		Long: `wordcliques reads a list of words, keeps the five-letter words with five
distinct letters and writes every set of five such words that share no letter.
Anagrams are merged into one entry and listed together, separated by '|'.

Locations may be local paths or file://, s3://bucket/key and minio://bucket/key
URIs. Files ending in .gz, .zst or .lz4 are decompressed and compressed
transparently.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			final := s
			if s.ConfigFile != "" {
				fc, err := LoadFileConfig(s.ConfigFile, environ)
				if err != nil {
					return err
				}
				if err := final.mergeFile(fc, cmd.Flags().Changed); err != nil {
					return fmt.Errorf("%s: %w", s.ConfigFile, err)
				}
			}
			return Run(cmd.Context(), final, stdout, stderr, lookupEnv(environ))
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVar(&s.ConfigFile, flagConfig, "", "HCL config file; flags override its values")
	f.StringVarP(&s.WordsFile, flagWordsFile, "w", s.WordsFile, "word list location")
	f.StringVarP(&s.OutputFile, flagOutputFile, "o", s.OutputFile, "results location")
	f.IntVarP(&s.CliqueSize, flagCliqueSize, "k", s.CliqueSize, "number of words per clique")
	f.IntVar(&s.Workers, flagWorkers, s.Workers, "search goroutines (0 = GOMAXPROCS)")
	f.IntVar(&s.ChunkSize, flagChunkSize, s.ChunkSize, "top-level nodes per search task (0 = default)")
	f.DurationVar(&s.ProgressInterval, flagProgressInterval, s.ProgressInterval, "how often to log search progress (0 = never)")
	f.StringVar(&s.LogLevel, flagLogLevel, s.LogLevel, "log level: debug, info, warn or error")
	f.StringVar(&s.LogFormat, flagLogFormat, s.LogFormat, "log format: text or json")
	f.StringVar(&s.Summary, flagSummary, "", `write a run summary to this location ("-" for stdout)`)
	f.StringVar(&s.SummaryCodec, flagSummaryCodec, "", "summary codec: go-json or json")
	f.StringVar(&s.MetricsTextfile, flagMetricsTextfile, "", "write Prometheus metrics to this node-exporter textfile")
	f.StringVar(&s.MemoryLimit, flagMemoryLimit, "", `graph memory budget, e.g. "2GiB" (empty = unlimited)`)
	f.StringVar(&s.IOLimit, flagIOLimit, "", `read/write throughput per second, e.g. "64MiB" (empty = unlimited)`)
	f.StringVar(&s.MinioEndpoint, flagMinioEndpoint, "", "MinIO endpoint for minio:// locations")
	f.StringVar(&s.PublishTable, flagPublishTable, "", "DynamoDB table to publish s3:// results to")

	return cmd
}

func lookupEnv(environ []string) func(string) string {
	vars := envVars(environ)
	return func(key string) string { return vars[key] }
}
