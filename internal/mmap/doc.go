// Package mmap provides read-write memory-mapped file regions.
//
// # Overview
//
// Scratch files are staged in shared file mappings rather than on the Go heap,
// so the bytes written by the codec live in exactly one place: the page cache
// of a file that is zeroed and removed on release.
//
// # Usage
//
//	f, _ := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
//	_ = f.Truncate(4096)
//
//	m, err := mmap.Map(f, 4096, mmap.ReadWrite)
//	if err != nil { ... }
//	defer m.Close()
//
//	copy(m.Bytes(), "NAME: demo\n")
//	_ = m.Sync() // write-through to the backing file
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2), msync(2) with MS_SYNC, madvise(2)
//   - Windows: CreateFileMapping/MapViewOfFile with FlushViewOfFile (advise is a no-op)
//
// # Thread Safety
//
// A Mapping has a single owner. Close is idempotent and protected by an atomic
// flag, but callers must not touch Bytes() after Close returns.
package mmap
