package s3

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/wordcliques/blobstore"
	"github.com/hupe1980/wordcliques/internal/hash"
)

func TestStore_Open(t *testing.T) {
	client := new(MockS3Client)
	store := NewStore(client, "bucket", "runs/")

	client.On("HeadObject", mock.Anything, mock.MatchedBy(func(in *s3.HeadObjectInput) bool {
		return aws.ToString(in.Key) == "runs/missing.txt"
	})).Return(nil, &types.NotFound{}).Once()
	client.On("HeadObject", mock.Anything, mock.MatchedBy(func(in *s3.HeadObjectInput) bool {
		return aws.ToString(in.Bucket) == "bucket" && aws.ToString(in.Key) == "runs/words.txt"
	})).Return(&s3.HeadObjectOutput{ContentLength: aws.Int64(12)}, nil).Once()

	_, err := store.Open(context.Background(), "missing.txt")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	b, err := store.Open(context.Background(), "words.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(12), b.Size())

	client.AssertExpectations(t)
}

func TestBlob_ReadAt(t *testing.T) {
	client := new(MockS3Client)
	b := &s3Blob{client: client, bucket: "b", key: "k", size: 12}

	client.On("GetObject", mock.Anything, mock.MatchedBy(func(in *s3.GetObjectInput) bool {
		return aws.ToString(in.Range) == "bytes=6-10"
	})).Return(&s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader("fghij"))}, nil).Once()
	client.On("GetObject", mock.Anything, mock.MatchedBy(func(in *s3.GetObjectInput) bool {
		return aws.ToString(in.Range) == "bytes=10-11"
	})).Return(&s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader("j\n"))}, nil).Once()

	buf := make([]byte, 5)
	n, err := b.ReadAt(context.Background(), buf, 6)
	require.NoError(t, err)
	assert.Equal(t, "fghij", string(buf[:n]))

	// A read running past the end returns what exists plus io.EOF.
	n, err = b.ReadAt(context.Background(), buf, 10)
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, "j\n", string(buf[:n]))

	_, err = b.ReadAt(context.Background(), buf, 12)
	assert.Equal(t, io.EOF, err)

	client.AssertExpectations(t)
}

func TestBlob_ReadRange(t *testing.T) {
	client := new(MockS3Client)
	b := &s3Blob{client: client, bucket: "b", key: "k", size: 12}

	client.On("GetObject", mock.Anything, mock.MatchedBy(func(in *s3.GetObjectInput) bool {
		return aws.ToString(in.Range) == "bytes=0-11"
	})).Return(&s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader("abcde\nfghij\n"))}, nil).Once()

	r, err := blobstore.NewReader(context.Background(), b)
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "abcde\nfghij\n", string(data))

	empty, err := b.ReadRange(context.Background(), 12, 5)
	require.NoError(t, err)
	data, err = io.ReadAll(empty)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestStore_Put(t *testing.T) {
	client := new(MockS3Client)
	store := NewStore(client, "bucket", "")

	client.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		return aws.ToString(in.Key) == "results.txt" &&
			aws.ToInt64(in.ContentLength) == 6 &&
			aws.ToString(in.ChecksumCRC32C) == hash.CRC32CBase64([]byte("abcde\n"))
	})).Return(&s3.PutObjectOutput{}, nil).Once()

	require.NoError(t, store.Put(context.Background(), "results.txt", []byte("abcde\n")))
	client.AssertExpectations(t)
}

func TestStore_Create(t *testing.T) {
	client := new(MockS3Client)
	store := NewStore(client, "bucket", "runs")

	var body string
	client.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		return aws.ToString(in.Key) == "runs/results.txt"
	})).Run(func(args mock.Arguments) {
		in := args.Get(1).(*s3.PutObjectInput)
		data, _ := io.ReadAll(in.Body)
		body = string(data)
	}).Return(&s3.PutObjectOutput{}, nil).Once()

	w, err := store.Create(context.Background(), "results.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("abcde,fghij\n"))
	require.NoError(t, err)
	require.NoError(t, w.Sync())
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	assert.Equal(t, "abcde,fghij\n", body)
	client.AssertExpectations(t)
}

func TestStore_Delete(t *testing.T) {
	client := new(MockS3Client)
	store := NewStore(client, "bucket", "runs")

	client.On("DeleteObject", mock.Anything, mock.MatchedBy(func(in *s3.DeleteObjectInput) bool {
		return aws.ToString(in.Key) == "runs/old.txt"
	})).Return(&s3.DeleteObjectOutput{}, nil).Once()

	require.NoError(t, store.Delete(context.Background(), "old.txt"))
	client.AssertExpectations(t)
}

func TestStore_List(t *testing.T) {
	client := new(MockS3Client)
	store := NewStore(client, "bucket", "runs/")

	client.On("ListObjectsV2", mock.Anything, mock.MatchedBy(func(in *s3.ListObjectsV2Input) bool {
		return aws.ToString(in.Prefix) == "runs/results-" && in.ContinuationToken == nil
	})).Return(&s3.ListObjectsV2Output{
		IsTruncated:           aws.Bool(true),
		NextContinuationToken: aws.String("next"),
		Contents:              []types.Object{{Key: aws.String("runs/results-2.txt")}},
	}, nil).Once()
	client.On("ListObjectsV2", mock.Anything, mock.MatchedBy(func(in *s3.ListObjectsV2Input) bool {
		return aws.ToString(in.ContinuationToken) == "next"
	})).Return(&s3.ListObjectsV2Output{
		IsTruncated: aws.Bool(false),
		Contents:    []types.Object{{Key: aws.String("runs/results-1.txt")}},
	}, nil).Once()

	names, err := store.List(context.Background(), "results-")
	require.NoError(t, err)
	assert.Equal(t, []string{"results-1.txt", "results-2.txt"}, names)
	client.AssertExpectations(t)
}
