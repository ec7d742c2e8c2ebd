package blobstore

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// Scheme identifies the backend of a Location.
type Scheme string

const (
	SchemeFile  Scheme = "file"
	SchemeS3    Scheme = "s3"
	SchemeMinio Scheme = "minio"
)

// Location names one blob: a local file or an object in a bucket.
type Location struct {
	Scheme Scheme

	// Bucket is empty for local files.
	Bucket string

	// Key is the object key, or the file path for local files.
	Key string
}

// ParseURI parses a blob location. Plain paths and file:// URIs are local;
// s3:// and minio:// URIs name an object as bucket/key.
func ParseURI(raw string) (Location, error) {
	if raw == "" {
		return Location{}, fmt.Errorf("blobstore: empty location")
	}

	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok {
		return Location{Scheme: SchemeFile, Key: raw}, nil
	}

	switch Scheme(strings.ToLower(scheme)) {
	case SchemeFile:
		u, err := url.Parse(raw)
		if err != nil {
			return Location{}, fmt.Errorf("blobstore: parse %q: %w", raw, err)
		}
		if u.Path == "" {
			return Location{}, fmt.Errorf("blobstore: %q has no path", raw)
		}
		return Location{Scheme: SchemeFile, Key: filepath.FromSlash(u.Path)}, nil
	case SchemeS3, SchemeMinio:
		bucket, key, _ := strings.Cut(rest, "/")
		key = strings.TrimPrefix(path.Clean("/"+key), "/")
		if bucket == "" || key == "" {
			return Location{}, fmt.Errorf("blobstore: %q must be %s://bucket/key", raw, scheme)
		}
		return Location{Scheme: Scheme(strings.ToLower(scheme)), Bucket: bucket, Key: key}, nil
	default:
		return Location{}, fmt.Errorf("blobstore: unsupported scheme %q", scheme)
	}
}

// IsLocal reports whether l is a local file.
func (l Location) IsLocal() bool {
	return l.Scheme == SchemeFile
}

// Dir returns the location's parent: the directory of a local file or the
// key prefix of an object, without a trailing slash.
func (l Location) Dir() string {
	if l.IsLocal() {
		return filepath.Dir(l.Key)
	}
	if i := strings.LastIndexByte(l.Key, '/'); i >= 0 {
		return l.Key[:i]
	}
	return ""
}

// Name returns the last element of the location.
func (l Location) Name() string {
	if l.IsLocal() {
		return filepath.Base(l.Key)
	}
	return path.Base(l.Key)
}

// String returns l in the form accepted by ParseURI.
func (l Location) String() string {
	if l.IsLocal() {
		return l.Key
	}
	return string(l.Scheme) + "://" + l.Bucket + "/" + l.Key
}
