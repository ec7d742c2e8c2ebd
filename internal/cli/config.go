package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// FileConfig is the optional HCL configuration file. Every attribute is
// optional; command-line flags take precedence.
//
//	words_file  = "s3://lists/words_alpha.txt.zst"
//	output_file = "results.txt"
//	workers     = 8
//
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
//
//	limits {
//	  memory = "2GiB"
//	  io     = "64MiB"
//	}
//
//	minio {
//	  endpoint   = "localhost:9000"
//	  access_key = env.MINIO_ACCESS_KEY
//	  secret_key = env.MINIO_SECRET_KEY
//	}
//
//	publish {
//	  table = "wordcliques-commits"
//	}
//
// Environment variables are available as env.NAME.
type FileConfig struct {
	WordsFile        string `hcl:"words_file,optional"`
	OutputFile       string `hcl:"output_file,optional"`
	CliqueSize       int    `hcl:"clique_size,optional"`
	Workers          int    `hcl:"workers,optional"`
	ChunkSize        int    `hcl:"chunk_size,optional"`
	ProgressInterval string `hcl:"progress_interval,optional"`
	Summary          string `hcl:"summary,optional"`
	SummaryCodec     string `hcl:"summary_codec,optional"`
	MetricsTextfile  string `hcl:"metrics_textfile,optional"`

	Log     *LogConfig     `hcl:"log,block"`
	Limits  *LimitsConfig  `hcl:"limits,block"`
	Minio   *MinioConfig   `hcl:"minio,block"`
	Publish *PublishConfig `hcl:"publish,block"`
}

// LogConfig selects the log level and format.
type LogConfig struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// LimitsConfig holds resource limits as human-readable byte sizes.
type LimitsConfig struct {
	Memory string `hcl:"memory,optional"`
	IO     string `hcl:"io,optional"`
}

// MinioConfig configures the minio:// backend.
type MinioConfig struct {
	Endpoint  string `hcl:"endpoint"`
	AccessKey string `hcl:"access_key,optional"`
	SecretKey string `hcl:"secret_key,optional"`
	Region    string `hcl:"region,optional"`
	Secure    bool   `hcl:"secure,optional"`
}

// PublishConfig configures publishing the results pointer to DynamoDB.
// Region also applies to s3:// locations.
type PublishConfig struct {
	Table  string `hcl:"table"`
	Region string `hcl:"region,optional"`
}

// LoadFileConfig parses and decodes the HCL file at path. environ is exposed
// to expressions as env.NAME; pass os.Environ() in production.
func LoadFileConfig(path string, environ []string) (*FileConfig, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return parseFileConfig(src, path, environ)
}

func parseFileConfig(src []byte, filename string, environ []string) (*FileConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, diags)
	}

	var cfg FileConfig
	if diags := gohcl.DecodeBody(file.Body, evalContext(environ), &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", filename, diags)
	}
	return &cfg, nil
}

func evalContext(environ []string) *hcl.EvalContext {
	env := envVars(environ)
	vars := make(map[string]cty.Value, len(env))
	for k, v := range env {
		vars[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}

// envVars splits KEY=VALUE pairs. Later duplicates win.
func envVars(environ []string) map[string]string {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = v
	}
	return vars
}
