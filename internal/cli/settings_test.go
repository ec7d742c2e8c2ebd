package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_MergeFile(t *testing.T) {
	fc := &FileConfig{
		WordsFile:        "file-words.txt",
		OutputFile:       "file-results.txt",
		Workers:          7,
		ProgressInterval: "250ms",
		Log:              &LogConfig{Level: "debug"},
		Limits:           &LimitsConfig{IO: "1MiB"},
		Minio:            &MinioConfig{Endpoint: "minio:9000", AccessKey: "ak", Secure: true},
		Publish:          &PublishConfig{Table: "t", Region: "eu-west-1"},
	}

	s := DefaultSettings()
	s.OutputFile = "flag-results.txt"
	changed := func(flag string) bool { return flag == flagOutputFile }

	require.NoError(t, s.mergeFile(fc, changed))

	assert.Equal(t, "file-words.txt", s.WordsFile)
	assert.Equal(t, "flag-results.txt", s.OutputFile)
	assert.Equal(t, 5, s.CliqueSize)
	assert.Equal(t, 7, s.Workers)
	assert.Equal(t, 250*time.Millisecond, s.ProgressInterval)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "text", s.LogFormat)
	assert.Equal(t, "1MiB", s.IOLimit)
	assert.Equal(t, "minio:9000", s.MinioEndpoint)
	assert.Equal(t, "ak", s.MinioAccessKey)
	assert.True(t, s.MinioSecure)
	assert.Equal(t, "t", s.PublishTable)
	assert.Equal(t, "eu-west-1", s.AWSRegion)
}

func TestSettings_MergeFileBadDuration(t *testing.T) {
	s := DefaultSettings()
	err := s.mergeFile(&FileConfig{ProgressInterval: "soon"}, func(string) bool { return false })
	assert.Error(t, err)
}

func TestSettings_Limits(t *testing.T) {
	tests := []struct {
		name     string
		memory   string
		io       string
		wantMem  int64
		wantIO   int64
		wantFail bool
	}{
		{"Unset", "", "", 0, 0, false},
		{"Binary", "2GiB", "64MiB", 2 << 30, 64 << 20, false},
		{"Decimal", "1MB", "500kB", 1000000, 500000, false},
		{"PlainBytes", "1024", "", 1024, 0, false},
		{"Invalid", "lots", "", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Settings{MemoryLimit: tt.memory, IOLimit: tt.io}
			mem, io, err := s.Limits()
			if tt.wantFail {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMem, mem)
			assert.Equal(t, tt.wantIO, io)
		})
	}
}

func TestSettings_Logger(t *testing.T) {
	var buf bytes.Buffer

	s := Settings{LogLevel: "warn", LogFormat: "json"}
	log, err := s.Logger(&buf)
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	_, err = Settings{LogLevel: "loud"}.Logger(&buf)
	assert.Error(t, err)

	_, err = Settings{LogLevel: "info", LogFormat: "xml"}.Logger(&buf)
	assert.Error(t, err)
}
