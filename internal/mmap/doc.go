// Package mmap provides anonymous, page-aligned memory mappings that live
// outside the Go heap.
//
// # Usage
//
//	m, err := mmap.MapAnon(1 << 20)
//	if err != nil { ... }
//	defer m.Close()
//
//	buf := m.Bytes()
//
// The returned slice is valid until Close. Accessing it afterwards results
// in undefined behavior (likely a crash).
package mmap
