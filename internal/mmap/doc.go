// Package mmap maps word lists and result files into memory for read-only,
// zero-copy access.
//
//	m, err := mmap.Open("words.txt")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	data := m.Bytes()
//
// Unix systems use mmap(2) and madvise(2). Windows uses
// CreateFileMapping/MapViewOfFile, and Advise is a no-op there.
//
// A Mapping may be read from many goroutines. Close is idempotent, but the
// slice returned by Bytes must not be used after Close.
package mmap
