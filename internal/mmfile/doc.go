// Package mmfile provides read-only file mapping for schema dumps.
//
// On unix the file is mapped with mmap via golang.org/x/sys/unix; elsewhere
// it is read into memory.
package mmfile
