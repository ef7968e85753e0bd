// Package ports defines the contracts between the application core and the
// infrastructure adapters: the document store with its transaction primitive,
// and the per-collection repositories.
package ports

import (
	"context"
	"errors"

	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
)

// ErrTransactionContention is returned when the store exhausted its internal
// conflict-retry budget for a transaction. It is a transient failure: the
// request itself is valid and the caller may retry, unlike the deterministic
// domain errors in pkg/errs.
var ErrTransactionContention = errors.New("transaction contention: conflict retries exhausted")

// Document is the raw field map of a stored document. Reference fields are
// normalized to kernel.Ref by the store adapters, so mapping code never sees
// driver-specific reference types.
type Document map[string]any

// Patch is a partial update: field name to new value, where the value may be
// one of the sentinel operations below.
type Patch map[string]any

// FieldIncrement is a patch sentinel: atomically add Amount to the numeric
// field, treating a missing field as zero.
type FieldIncrement struct {
	Amount float64
}

// FieldDelete is a patch sentinel: remove the field from the document.
type FieldDelete struct{}

// FieldServerTime is a write sentinel: store the database server's commit
// time. Valid in both Set documents and Update patches.
type FieldServerTime struct{}

// Increment builds a FieldIncrement sentinel.
func Increment(amount float64) FieldIncrement {
	return FieldIncrement{Amount: amount}
}

// DeleteField builds a FieldDelete sentinel.
func DeleteField() FieldDelete {
	return FieldDelete{}
}

// ServerTimestamp builds a FieldServerTime sentinel.
func ServerTimestamp() FieldServerTime {
	return FieldServerTime{}
}

// Filter is an equality filter for Query. The production indexes only cover
// equality on the admin-view fields; anything richer is filtered in memory by
// the query handlers, mirroring the legacy fallback behavior.
type Filter struct {
	Field string
	Value any
}

// Where builds an equality Filter.
func Where(field string, value any) Filter {
	return Filter{Field: field, Value: value}
}

// Snapshot is a queried document together with its reference.
type Snapshot struct {
	Ref  kernel.Ref
	Data Document
}

// TxReader is the read half of a transaction attempt. Every Get is a fresh
// read tracked by the store for conflict detection; state captured outside
// the transaction must never be consulted instead.
type TxReader interface {
	// Get reads a document inside the transaction. The second return value
	// reports whether the document exists; a missing document is not an error.
	Get(ref kernel.Ref) (Document, bool, error)
}

// StagedWriteKind discriminates the two write operations a transaction can stage.
type StagedWriteKind int

const (
	// StagedSet replaces the whole document, creating it if absent.
	StagedSet StagedWriteKind = iota + 1

	// StagedUpdate patches an existing document; the store fails the
	// transaction if the document does not exist.
	StagedUpdate
)

// StagedWrite is one buffered write of a transaction attempt.
type StagedWrite struct {
	Ref   kernel.Ref
	Kind  StagedWriteKind
	Doc   Document
	Patch Patch
}

// WriteSet buffers the writes of one transaction attempt. The store applies
// the buffered writes only after the transaction callback returns, which makes
// the underlying primitive's read-before-write rule structural: no staged
// write can reach the store while the callback is still reading.
//
// The zero value is ready to use. A WriteSet must not be retained across
// attempts; the store hands a fresh one to every retry.
type WriteSet struct {
	writes []StagedWrite
}

// Set stages a full-document write.
func (w *WriteSet) Set(ref kernel.Ref, doc Document) {
	w.writes = append(w.writes, StagedWrite{Ref: ref, Kind: StagedSet, Doc: doc})
}

// Update stages a partial-document patch.
func (w *WriteSet) Update(ref kernel.Ref, patch Patch) {
	w.writes = append(w.writes, StagedWrite{Ref: ref, Kind: StagedUpdate, Patch: patch})
}

// Writes returns the staged writes in staging order.
func (w *WriteSet) Writes() []StagedWrite {
	return w.writes
}

// Empty reports whether the attempt staged no writes (an idempotent no-op).
func (w *WriteSet) Empty() bool {
	return len(w.writes) == 0
}

// TxFunc is a transaction attempt. It may run multiple times: the store
// re-executes it from scratch when a document it read was modified by a
// concurrent committed writer. Implementations must therefore re-read all
// state through tx on every invocation and stage writes only into w.
type TxFunc func(tx TxReader, w *WriteSet) error

// Unsubscribe stops a watch. Safe to call more than once.
type Unsubscribe func()

// DocumentStore is the persistence contract of the coordinator: a document
// database offering per-document reads/writes, equality queries, an
// optimistic-concurrency transaction primitive, and a change stream.
type DocumentStore interface {
	// Get reads a single document. The second return value reports existence.
	Get(ctx context.Context, ref kernel.Ref) (Document, bool, error)

	// Set replaces a document, creating it if absent.
	Set(ctx context.Context, ref kernel.Ref, doc Document) error

	// Update patches an existing document outside a transaction.
	// Returns errs.ObjectNotFound semantics via a missing-document error
	// from the adapter when the document does not exist.
	Update(ctx context.Context, ref kernel.Ref, patch Patch) error

	// Query returns the documents of a collection matching all equality filters.
	Query(ctx context.Context, collection string, filters ...Filter) ([]Snapshot, error)

	// NewDocRef allocates a reference with a fresh unique id in the collection,
	// without writing anything.
	NewDocRef(collection string) kernel.Ref

	// RunTransaction executes fn atomically with the store's
	// optimistic-concurrency retry. Validation errors returned by fn abort the
	// transaction and are surfaced unchanged; conflicts re-run fn transparently
	// until the retry budget is exhausted, which surfaces as
	// ErrTransactionContention.
	RunTransaction(ctx context.Context, fn TxFunc) error

	// Watch subscribes to a document. fn is called with the current state
	// immediately and on every subsequent change; the boolean reports
	// existence. Callbacks for one subscription are delivered sequentially.
	Watch(ctx context.Context, ref kernel.Ref, fn func(Document, bool)) (Unsubscribe, error)
}
