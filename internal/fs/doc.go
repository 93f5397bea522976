// Package fs provides filesystem abstractions for testability and fault injection.
//
// The package defines two key interfaces:
//
//   - [File]: an open file with read/write/sync/truncate and its descriptor
//   - [FileSystem]: the handful of filesystem operations scratch files need
//
// # Implementations
//
//   - [LocalFS]: Production implementation using standard os package
//   - [FaultyFS]: Test utility for fault injection (simulate I/O errors)
//
// # Usage
//
// Production code should use fs.Default (which is [LocalFS]):
//
//	file, err := fs.Default.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
//
// Tests can inject [FaultyFS] to simulate a failing write-through:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule(".tsp", fs.Fault{FailOnSync: true})
//	// inject ffs into the scratch file under test
//
// # Design Notes
//
// This package intentionally does NOT include context.Context parameters.
// Local filesystem calls are not interruptible at the syscall level.
package fs
