// Package hash computes the CRC32-Castagnoli (CRC32C) checksums attached to
// uploaded result objects.
//
//	sum := hash.CRC32C(data)
//	header := hash.CRC32CBase64(data) // for ChecksumCRC32C
package hash
