// Package scratch provides secure, growable, memory-mapped scratch files.
//
// A scratch File stages sensitive text (problem geometry, solver parameters)
// in a shared file mapping under the temp directory instead of the Go heap.
// The file is the only copy: it is zero-filled on creation, written through
// the mapping, and zeroed again with a forced write-through to disk before it
// is removed.
//
// # Lifecycle
//
//	f, err := scratch.Create("tsp")
//	if err != nil { ... }
//	defer f.Close() // wipe, unmap, delete - on every exit path
//
//	fmt.Fprintf(f, "DIMENSION: %d\n", n) // grows by doubling as needed
//	solver.Run(f.Path())
//
// # Growth
//
// Capacity starts at DefaultCapacity (or WithCapacity) and only ever doubles.
// Growing maps a new file at a fresh random path, copies the written prefix,
// then wipes and deletes the old file. Path() therefore changes on growth;
// read it only after the last write.
//
// # Wipe Failures
//
// If the write-through after zeroing fails, the in-memory view is already
// zeroed but the disk may still hold the old bytes. Such failures are returned
// as *WipeError (errors.Is(err, ErrInsecureWipe)) carrying the path, logged at
// error level, and never prevent the file from being deleted.
//
// # Ownership
//
// A File has exactly one owner and is not safe for concurrent use. Jobs that
// run in parallel each create their own files; nothing is shared.
package scratch
