package blobstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURI(t *testing.T) {
	tests := []struct {
		raw  string
		want Location
		dir  string
		name string
	}{
		{"words.txt", Location{Scheme: SchemeFile, Key: "words.txt"}, ".", "words.txt"},
		{"data/words.txt.gz", Location{Scheme: SchemeFile, Key: "data/words.txt.gz"}, "data", "words.txt.gz"},
		{"file:///tmp/words.txt", Location{Scheme: SchemeFile, Key: filepath.FromSlash("/tmp/words.txt")}, filepath.FromSlash("/tmp"), "words.txt"},
		{"s3://bucket/lists/words.txt.zst", Location{Scheme: SchemeS3, Bucket: "bucket", Key: "lists/words.txt.zst"}, "lists", "words.txt.zst"},
		{"S3://bucket//a/../results.txt", Location{Scheme: SchemeS3, Bucket: "bucket", Key: "results.txt"}, "", "results.txt"},
		{"minio://bucket/results.txt", Location{Scheme: SchemeMinio, Bucket: "bucket", Key: "results.txt"}, "", "results.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseURI(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.dir, got.Dir())
			assert.Equal(t, tt.name, got.Name())
		})
	}
}

func TestParseURI_Errors(t *testing.T) {
	for _, raw := range []string{"", "s3://", "s3://bucket", "s3://bucket/", "gs://bucket/key", "file://"} {
		_, err := ParseURI(raw)
		assert.Error(t, err, raw)
	}
}

func TestLocation_String(t *testing.T) {
	for _, raw := range []string{"words.txt", "s3://bucket/a/b.txt", "minio://bucket/c.txt"} {
		l, err := ParseURI(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, l.String())
	}
}
