package s3

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// UploadConfig tunes multipart uploads.
type UploadConfig struct {
	// PartSize is the multipart part size. Default: 8MB.
	PartSize int64

	// Concurrency is the number of parts uploaded in parallel. Default: 5.
	Concurrency int

	// EnableChecksum asks S3 to verify CRC32C checksums. Default: true.
	EnableChecksum bool

	// LeavePartsOnError keeps the parts of a failed multipart upload.
	LeavePartsOnError bool
}

// DefaultUploadConfig returns the settings used when none are given.
func DefaultUploadConfig() UploadConfig {
	return UploadConfig{
		PartSize:       8 * 1024 * 1024,
		Concurrency:    5,
		EnableChecksum: true,
	}
}

func newUploader(client manager.UploadAPIClient, cfg UploadConfig) *manager.Uploader {
	return manager.NewUploader(client, func(u *manager.Uploader) {
		if cfg.PartSize > 0 {
			u.PartSize = cfg.PartSize
		}
		if cfg.Concurrency > 0 {
			u.Concurrency = cfg.Concurrency
		}
		u.LeavePartsOnError = cfg.LeavePartsOnError
	})
}

// httpRange formats the half-open range [off, end) as an HTTP Range header.
func httpRange(off, end int64) string {
	return fmt.Sprintf("bytes=%d-%d", off, end-1)
}

// streamingWritableBlob feeds writes through a pipe into manager.Uploader.
// The object appears when Close returns nil.
type streamingWritableBlob struct {
	pw   *io.PipeWriter
	done chan error

	closed   atomic.Bool
	closeMu  sync.Mutex
	closeErr error
}

func newStreamingWritableBlob(ctx context.Context, uploader *manager.Uploader, bucket, key string, checksum bool) *streamingWritableBlob {
	pr, pw := io.Pipe()
	b := &streamingWritableBlob{
		pw:   pw,
		done: make(chan error, 1),
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   pr,
	}
	if checksum {
		input.ChecksumAlgorithm = types.ChecksumAlgorithmCrc32c
	}

	go func() {
		_, err := uploader.Upload(ctx, input)
		_ = pr.CloseWithError(err)
		b.done <- err
	}()

	return b
}

func (b *streamingWritableBlob) Write(p []byte) (int, error) {
	if b.closed.Load() {
		return 0, io.ErrClosedPipe
	}
	return b.pw.Write(p)
}

// Close finishes the upload and waits for it. Later calls return the same error.
func (b *streamingWritableBlob) Close() error {
	b.closeMu.Lock()
	defer b.closeMu.Unlock()

	if !b.closed.CompareAndSwap(false, true) {
		return b.closeErr
	}
	if err := b.pw.Close(); err != nil {
		b.closeErr = err
		return err
	}
	b.closeErr = <-b.done
	return b.closeErr
}

// Abort stops the upload. The uploader removes any parts already sent
// unless LeavePartsOnError is set.
func (b *streamingWritableBlob) Abort() error {
	b.closeMu.Lock()
	defer b.closeMu.Unlock()

	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}
	_ = b.pw.CloseWithError(context.Canceled)
	b.closeErr = context.Canceled
	<-b.done
	return nil
}

// Sync is a no-op: data is committed on Close.
func (b *streamingWritableBlob) Sync() error {
	return nil
}
