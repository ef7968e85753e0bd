// Package commands contains the write operations of the admin backend.
// Implements the Command pattern for the CQRS split: each operation is a
// validated command object plus a handler orchestrating domain logic and
// persistence.
//
// The two coordinator commands (rider assignment, order completion) run
// inside a document-store transaction: all reads go through the transaction
// reader, all writes are staged into the write set and committed together.
// The status facade is a plain single-document update because it has no
// cross-entity invariant to protect.
package commands
