// Package fs abstracts the file operations behind atomic local writes.
//
//   - [File]: a temporary file being written
//   - [FileSystem]: temp-file creation, rename, remove and mkdir
//
// # Implementations
//
//   - [LocalFS]: production implementation using the os package
//   - [FaultyFS]: test utility that injects write, sync, close and rename
//     failures
//
// Production code uses fs.Default:
//
//	f, err := fs.Default.CreateTemp(dir, ".results.txt.tmp-*")
//
// Tests inject a FaultyFS to check that a failed write never replaces the
// target:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule("results", fs.Fault{FailAfterBytes: 1024})
package fs
