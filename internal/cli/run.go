package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/hupe1980/wordcliques"
	"github.com/hupe1980/wordcliques/blobstore"
	"github.com/hupe1980/wordcliques/blobstore/s3"
	"github.com/hupe1980/wordcliques/codec"
	"github.com/hupe1980/wordcliques/promcollector"
	"github.com/hupe1980/wordcliques/resource"
	"github.com/hupe1980/wordcliques/wordlist"
)

// Summary describes one finished run. It is written with --summary.
type Summary struct {
	Input      string             `json:"input"`
	Output     string             `json:"output"`
	Words      wordlist.Stats     `json:"words"`
	Distinct   int                `json:"distinct"`
	Edges      uint64             `json:"edges"`
	CliqueSize int                `json:"clique_size"`
	Cliques    int                `json:"cliques"`
	Stages     map[string]float64 `json:"stage_seconds"`
	Seconds    float64            `json:"seconds"`
	Published  uint64             `json:"published_version,omitempty"`
}

// Run reads the word list, solves it and writes the results, as configured
// by s. Log output goes to stderr; a summary named "-" goes to stdout.
func Run(ctx context.Context, s Settings, stdout, stderr io.Writer, getenv func(string) string) error {
	log, err := s.Logger(stderr)
	if err != nil {
		return err
	}

	memLimit, ioLimit, err := s.Limits()
	if err != nil {
		return err
	}
	var rc *resource.Controller
	if memLimit > 0 || ioLimit > 0 {
		rc = resource.NewController(resource.Config{
			MemoryLimitBytes:   memLimit,
			IOLimitBytesPerSec: ioLimit,
		})
	}

	var summaryCodec codec.Codec
	if s.Summary != "" {
		c, ok := codec.ByName(s.SummaryCodec)
		if !ok {
			return fmt.Errorf("unknown summary codec %q (want one of %s)", s.SummaryCodec, strings.Join(codec.Names(), ", "))
		}
		summaryCodec = c
	}

	in, err := blobstore.ParseURI(s.WordsFile)
	if err != nil {
		return err
	}
	out, err := blobstore.ParseURI(s.OutputFile)
	if err != nil {
		return err
	}
	if s.PublishTable != "" && out.Scheme != blobstore.SchemeS3 {
		return fmt.Errorf("publishing to %s requires an s3:// output, got %s", s.PublishTable, out)
	}

	resolver := &storeResolver{settings: s, getenv: getenv}
	inStore, inName, err := resolver.resolve(ctx, in)
	if err != nil {
		return err
	}
	outStore, outName, err := resolver.resolve(ctx, out)
	if err != nil {
		return err
	}

	start := time.Now()

	log.InfoContext(ctx, fmt.Sprintf("Reading words (from %s)...", in))
	words, stats, err := wordlist.Load(ctx, inStore, inName, wordlist.WithResourceController(rc))
	if err != nil {
		return fmt.Errorf("read %s: %w", in, err)
	}
	log.DebugContext(ctx, "word list read",
		"lines", stats.Lines,
		"accepted", stats.Accepted,
		"rejected", stats.Rejected,
	)

	var mc wordcliques.MetricsCollector = wordcliques.NoopMetricsCollector{}
	var prom *promcollector.Collector
	if s.MetricsTextfile != "" {
		prom = promcollector.New()
		mc = prom
	}

	finderOpts := []wordcliques.FinderOption{
		wordcliques.WithCliqueSize(s.CliqueSize),
		wordcliques.WithWorkers(s.Workers),
	}
	if s.ChunkSize > 0 {
		finderOpts = append(finderOpts, wordcliques.WithChunkSize(s.ChunkSize))
	}

	solver := wordcliques.NewSolver(
		wordcliques.WithLogger(log),
		wordcliques.WithMetricsCollector(mc),
		wordcliques.WithFinderOptions(finderOpts...),
		wordcliques.WithProgressInterval(s.ProgressInterval),
		wordcliques.WithResourceController(rc),
	)

	res, err := solver.Solve(ctx, words)
	if err != nil {
		return err
	}

	if err := wordlist.Save(ctx, outStore, outName, res.Lines, wordlist.WithResourceController(rc)); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	elapsed := time.Since(start)
	log.InfoContext(ctx, fmt.Sprintf("Done! Found %d cliques in %.3f seconds.", res.Cliques, elapsed.Seconds()))
	log.InfoContext(ctx, fmt.Sprintf("Results were written to %s", out))

	summary := Summary{
		Input:      in.String(),
		Output:     out.String(),
		Words:      stats,
		Distinct:   res.Distinct,
		Edges:      res.Edges,
		CliqueSize: s.CliqueSize,
		Cliques:    res.Cliques,
		Stages:     make(map[string]float64, len(res.Stages)),
		Seconds:    elapsed.Seconds(),
	}
	for st, d := range res.Stages {
		summary.Stages[string(st)] = d.Seconds()
	}

	if s.PublishTable != "" {
		version, err := resolver.publish(ctx, out, outStore)
		if err != nil {
			return fmt.Errorf("publish %s: %w", out, err)
		}
		summary.Published = version
		log.InfoContext(ctx, "results published", "table", s.PublishTable, "version", version)
	}

	if prom != nil {
		if err := prom.WriteTextfile(s.MetricsTextfile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	if s.Summary != "" {
		if err := writeSummary(ctx, resolver, s.Summary, summaryCodec, summary, stdout); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	return nil
}

// publish records out as the latest results in the DynamoDB commit table.
func (r *storeResolver) publish(ctx context.Context, out blobstore.Location, store blobstore.BlobStore) (uint64, error) {
	s3Store, ok := store.(*s3.Store)
	if !ok {
		return 0, fmt.Errorf("%s is not an s3 location", out)
	}
	cfg, err := r.awsConfig(ctx)
	if err != nil {
		return 0, err
	}

	baseURI := "s3://" + out.Bucket + "/" + out.Dir()
	commits := s3.NewDDBCommitStore(s3Store, dynamodb.NewFromConfig(cfg), r.settings.PublishTable, baseURI)
	return commits.Commit(ctx, out.Name())
}

func writeSummary(ctx context.Context, r *storeResolver, dest string, c codec.Codec, summary Summary, stdout io.Writer) error {
	data, err := codec.Pretty(c, summary)
	if err != nil {
		return err
	}
	if dest == "-" {
		_, err = stdout.Write(data)
		return err
	}

	loc, err := blobstore.ParseURI(dest)
	if err != nil {
		return err
	}
	store, name, err := r.resolve(ctx, loc)
	if err != nil {
		return err
	}
	return store.Put(ctx, name, data)
}
