// Package blobstore abstracts where word lists and results live.
//
// A BlobStore opens, creates, writes, deletes and lists named blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, mmap reads and atomic rename writes
//   - MemoryStore: in-process, for tests
//   - minio.Store: MinIO and other S3-compatible services
//   - s3.Store: Amazon S3 with range reads and multipart uploads
//   - s3.DDBCommitStore: s3.Store plus a DynamoDB-backed CURRENT pointer
//
// # Locations
//
// ParseURI turns a command-line argument into a Location:
//
//	words.txt               -> local file
//	file:///data/words.txt  -> local file
//	s3://bucket/lists/words.txt.zst
//	minio://bucket/results.txt
//
// # Custom Implementations
//
// Cloud backends should implement ReadRange with a ranged GET so that
// NewReader streams large blobs instead of buffering them:
//
//	type Blob interface {
//	    ReadAt(ctx, p, off) (int, error)
//	    ReadRange(ctx, off, length) (io.ReadCloser, error)
//	    Size() int64
//	    Close() error
//	}
package blobstore
