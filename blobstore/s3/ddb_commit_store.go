package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/hupe1980/wordcliques/blobstore"
)

// CurrentName is the virtual blob that holds the name of the latest
// published results object.
const CurrentName = "CURRENT"

// ErrConcurrentModification is returned when another writer committed the
// same version first.
var ErrConcurrentModification = errors.New("s3: concurrent modification detected")

// DDBClient is the subset of *dynamodb.Client the commit store uses.
type DDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

var _ DDBClient = (*dynamodb.Client)(nil)

// Commit is one published version of the CURRENT pointer.
type Commit struct {
	Version   uint64
	Results   string
	CreatedAt time.Time
}

// DDBCommitStore is an S3 store whose CURRENT pointer lives in DynamoDB.
//
// Result files are written to S3 under unique names; publishing then adds a
// new version row with a conditional write, so concurrent publishers never
// overwrite each other and readers always see a complete file.
//
// Table schema:
//
//   - Partition key: base_uri (S), the s3://bucket/prefix of the store
//   - Sort key: version (N), increasing by one per commit
//
//	aws dynamodb create-table \
//	  --table-name wordcliques-commits \
//	  --attribute-definitions AttributeName=base_uri,AttributeType=S AttributeName=version,AttributeType=N \
//	  --key-schema AttributeName=base_uri,KeyType=HASH AttributeName=version,KeyType=RANGE \
//	  --billing-mode PAY_PER_REQUEST
type DDBCommitStore struct {
	*Store

	ddb       DDBClient
	tableName string
	baseURI   string
	now       func() time.Time
}

var _ blobstore.BlobStore = (*DDBCommitStore)(nil)

// NewDDBCommitStore wraps store. baseURI partitions the table, so several
// stores can share it.
func NewDDBCommitStore(store *Store, ddb DDBClient, tableName, baseURI string) *DDBCommitStore {
	return &DDBCommitStore{
		Store:     store,
		ddb:       ddb,
		tableName: tableName,
		baseURI:   baseURI,
		now:       time.Now,
	}
}

// Open resolves CURRENT from DynamoDB; other names go to S3.
func (s *DDBCommitStore) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	if name != CurrentName {
		return s.Store.Open(ctx, name)
	}
	c, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	return &pointerBlob{content: []byte(c.Results)}, nil
}

// Put commits a new CURRENT version for CurrentName and writes S3 otherwise.
func (s *DDBCommitStore) Put(ctx context.Context, name string, data []byte) error {
	if name != CurrentName {
		return s.Store.Put(ctx, name, data)
	}
	_, err := s.Commit(ctx, string(data))
	return err
}

// Current returns the latest commit, or blobstore.ErrNotFound before the
// first one.
func (s *DDBCommitStore) Current(ctx context.Context) (Commit, error) {
	resp, err := s.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		KeyConditionExpression: aws.String("base_uri = :uri"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uri": &types.AttributeValueMemberS{Value: s.baseURI},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
		ConsistentRead:   aws.Bool(true),
	})
	if err != nil {
		return Commit{}, fmt.Errorf("query commits: %w", err)
	}
	if len(resp.Items) == 0 {
		return Commit{}, blobstore.ErrNotFound
	}
	return decodeCommit(resp.Items[0])
}

// Commit publishes results as the next CURRENT version.
// It returns ErrConcurrentModification if another writer won the race.
func (s *DDBCommitStore) Commit(ctx context.Context, results string) (uint64, error) {
	var version uint64
	switch cur, err := s.Current(ctx); {
	case errors.Is(err, blobstore.ErrNotFound):
	case err != nil:
		return 0, err
	default:
		version = cur.Version
	}
	version++

	_, err := s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item: map[string]types.AttributeValue{
			"base_uri":   &types.AttributeValueMemberS{Value: s.baseURI},
			"version":    &types.AttributeValueMemberN{Value: strconv.FormatUint(version, 10)},
			"results":    &types.AttributeValueMemberS{Value: results},
			"created_at": &types.AttributeValueMemberS{Value: s.now().UTC().Format(time.RFC3339)},
		},
		ConditionExpression: aws.String("attribute_not_exists(version)"),
	})
	if err != nil {
		var cond *types.ConditionalCheckFailedException
		if errors.As(err, &cond) {
			return 0, ErrConcurrentModification
		}
		return 0, fmt.Errorf("commit version %d: %w", version, err)
	}
	return version, nil
}

func decodeCommit(item map[string]types.AttributeValue) (Commit, error) {
	v, ok := item["version"].(*types.AttributeValueMemberN)
	if !ok {
		return Commit{}, errors.New("s3: commit item has no numeric version")
	}
	r, ok := item["results"].(*types.AttributeValueMemberS)
	if !ok {
		return Commit{}, errors.New("s3: commit item has no results name")
	}

	version, err := strconv.ParseUint(v.Value, 10, 64)
	if err != nil {
		return Commit{}, fmt.Errorf("s3: parse commit version: %w", err)
	}

	c := Commit{Version: version, Results: r.Value}
	if ts, ok := item["created_at"].(*types.AttributeValueMemberS); ok {
		c.CreatedAt, _ = time.Parse(time.RFC3339, ts.Value)
	}
	return c, nil
}

type pointerBlob struct {
	content []byte
}

func (b *pointerBlob) Close() error {
	return nil
}

func (b *pointerBlob) Size() int64 {
	return int64(len(b.content))
}

func (b *pointerBlob) Bytes() ([]byte, error) {
	return b.content, nil
}

func (b *pointerBlob) ReadAt(_ context.Context, p []byte, off int64) (int, error) {
	return bytes.NewReader(b.content).ReadAt(p, off)
}

func (b *pointerBlob) ReadRange(_ context.Context, off, length int64) (io.ReadCloser, error) {
	if off < 0 || off > int64(len(b.content)) {
		return nil, io.EOF
	}
	end := max(min(off+length, int64(len(b.content))), off)
	return io.NopCloser(bytes.NewReader(b.content[off:end])), nil
}
