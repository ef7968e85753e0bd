// Package kernel provides core domain primitives for the Rapiditos admin backend.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - Ref: A value object identifying a document in the store (collection + id),
//     replacing the loosely-typed reference paths of the legacy system
//   - Collection name constants of the production document schema
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
