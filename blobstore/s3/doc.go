// Package s3 stores word lists and results in Amazon S3.
//
//	store, err := s3.New(ctx, "my-bucket", "wordcliques/")
//	if err != nil { ... }
//	r, err := wordlist.Open(ctx, store, "words.txt.zst")
//
// Reads use ranged GETs, writes stream through manager.Uploader and switch
// to multipart uploads for large result files, and listing follows
// ListObjectsV2 pagination.
//
// DDBCommitStore adds a DynamoDB-backed CURRENT pointer so that several
// runs can publish results to the same prefix without clobbering each
// other.
package s3
