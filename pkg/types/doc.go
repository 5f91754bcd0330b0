// Package types defines the small value types and typed errors shared by
// every schemakit package.
//
// Design goals:
//   - Small, copyable values (SchemaKey, Handle) instead of object graphs.
//   - Typed errors with stable categories (resolution/format/bounds/state).
//   - Resolution failures are version mismatches, never transient.
//
// This package has no dependencies beyond the standard library.
package types
