package cli

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/hupe1980/wordcliques/blobstore"
	"github.com/hupe1980/wordcliques/blobstore/minio"
	"github.com/hupe1980/wordcliques/blobstore/s3"
)

// storeResolver maps locations to blob stores. The AWS configuration is
// loaded on first use so local-only runs never touch it.
type storeResolver struct {
	settings Settings
	getenv   func(string) string
	awsCfg   *aws.Config
}

// resolve returns the store holding loc and the blob name within it.
func (r *storeResolver) resolve(ctx context.Context, loc blobstore.Location) (blobstore.BlobStore, string, error) {
	switch loc.Scheme {
	case blobstore.SchemeFile:
		return blobstore.NewLocalStore(loc.Dir()), loc.Name(), nil
	case blobstore.SchemeS3:
		store, err := r.s3Store(ctx, loc)
		if err != nil {
			return nil, "", err
		}
		return store, loc.Name(), nil
	case blobstore.SchemeMinio:
		store, err := r.minioStore(loc)
		if err != nil {
			return nil, "", err
		}
		return store, loc.Name(), nil
	default:
		return nil, "", fmt.Errorf("unsupported location %s", loc)
	}
}

func (r *storeResolver) awsConfig(ctx context.Context) (aws.Config, error) {
	if r.awsCfg == nil {
		cfg, err := s3.LoadConfig(ctx, r.settings.AWSRegion)
		if err != nil {
			return aws.Config{}, fmt.Errorf("load aws config: %w", err)
		}
		r.awsCfg = &cfg
	}
	return *r.awsCfg, nil
}

func (r *storeResolver) s3Store(ctx context.Context, loc blobstore.Location) (*s3.Store, error) {
	cfg, err := r.awsConfig(ctx)
	if err != nil {
		return nil, err
	}
	return s3.NewStore(awss3.NewFromConfig(cfg), loc.Bucket, loc.Dir()), nil
}

func (r *storeResolver) minioStore(loc blobstore.Location) (*minio.Store, error) {
	s := r.settings
	if s.MinioEndpoint == "" {
		return nil, fmt.Errorf("%s: no minio endpoint configured (use --%s)", loc, flagMinioEndpoint)
	}

	accessKey, secretKey := s.MinioAccessKey, s.MinioSecretKey
	if accessKey == "" {
		accessKey = r.getenv("MINIO_ACCESS_KEY")
	}
	if secretKey == "" {
		secretKey = r.getenv("MINIO_SECRET_KEY")
	}

	return minio.New(minio.Config{
		Endpoint:  s.MinioEndpoint,
		AccessKey: accessKey,
		SecretKey: secretKey,
		Region:    s.MinioRegion,
		Secure:    s.MinioSecure,
	}, loc.Bucket, loc.Dir())
}
