// Package minio stores word lists and results in MinIO or any other
// S3-compatible service through the MinIO Go client.
//
//	store, err := minio.New(minio.Config{
//	    Endpoint:  "localhost:9000",
//	    AccessKey: "minioadmin",
//	    SecretKey: "minioadmin",
//	}, "wordcliques", "runs/")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r, err := wordlist.Open(ctx, store, "words.txt.zst")
//
// The package has no AWS dependency, which suits air-gapped deployments.
package minio
