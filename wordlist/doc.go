// Package wordlist reads candidate words and writes result lines.
//
// Input is one word per line. Trailing whitespace is stripped and only words
// that pass wordcliques.Valid are kept; the rest are counted in Stats.
//
// Files are reached through a blobstore.BlobStore and compressed according
// to their extension:
//
//	words.txt      plain
//	words.txt.gz   gzip (klauspost/compress)
//	words.txt.zst  zstd (klauspost/compress)
//	words.txt.lz4  lz4  (pierrec/lz4)
//
// An optional resource.Controller throttles the bytes moved to and from the
// store.
package wordlist
