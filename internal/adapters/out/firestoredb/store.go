// Package firestoredb implements ports.DocumentStore on Cloud Firestore.
// It is a thin translation layer: kernel.Ref to document references, the
// patch sentinels to Firestore field transforms, and the SDK's transaction
// runner to the ports transaction contract.
package firestoredb

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
	"github.com/RodrigoFK06/rapiditos/internal/core/ports"
	"github.com/RodrigoFK06/rapiditos/internal/pkg/errs"
)

// Store implements ports.DocumentStore on a Firestore client.
type Store struct {
	client *firestore.Client
}

var _ ports.DocumentStore = (*Store)(nil)

// NewStore creates a Firestore-backed document store.
func NewStore(client *firestore.Client) (*Store, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	return &Store{client: client}, nil
}

func (s *Store) docRef(ref kernel.Ref) *firestore.DocumentRef {
	return s.client.Collection(ref.Collection()).Doc(ref.ID())
}

// Get reads a single document.
func (s *Store) Get(ctx context.Context, ref kernel.Ref) (ports.Document, bool, error) {
	if err := ref.Validate(); err != nil {
		return nil, false, err
	}

	snap, err := s.docRef(ref).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return normalizeDocument(snap.Data()), true, nil
}

// Set replaces a document, creating it if absent.
func (s *Store) Set(ctx context.Context, ref kernel.Ref, doc ports.Document) error {
	if err := ref.Validate(); err != nil {
		return err
	}

	_, err := s.docRef(ref).Set(ctx, s.denormalizeDocument(doc))
	return err
}

// Update patches an existing document.
func (s *Store) Update(ctx context.Context, ref kernel.Ref, patch ports.Patch) error {
	if err := ref.Validate(); err != nil {
		return err
	}

	_, err := s.docRef(ref).Update(ctx, s.denormalizePatch(patch))
	if status.Code(err) == codes.NotFound {
		return errs.NewObjectNotFoundErrorWithCause(ref.Collection(), ref.ID(), err)
	}
	return err
}

// Query returns the documents of a collection matching all equality filters.
func (s *Store) Query(ctx context.Context, collection string, filters ...ports.Filter) ([]ports.Snapshot, error) {
	if collection == "" {
		return nil, errs.NewValueIsRequiredError("collection")
	}

	q := s.client.Collection(collection).Query
	for _, f := range filters {
		q = q.Where(f.Field, "==", s.denormalizeValue(f.Value))
	}

	docs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	snaps := make([]ports.Snapshot, 0, len(docs))
	for _, doc := range docs {
		ref, err := kernel.NewRef(collection, doc.Ref.ID)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, ports.Snapshot{Ref: ref, Data: normalizeDocument(doc.Data())})
	}
	return snaps, nil
}

// NewDocRef allocates a reference with a fresh Firestore document id.
func (s *Store) NewDocRef(collection string) kernel.Ref {
	doc := s.client.Collection(collection).NewDoc()
	ref, err := kernel.NewRef(collection, doc.ID)
	if err != nil {
		// collection names come from kernel constants; a bad one is a programming error
		panic(err)
	}
	return ref
}

// RunTransaction executes fn inside a Firestore transaction. The SDK enforces
// the read-before-write rule and retries aborted attempts; an exhausted retry
// budget surfaces as ports.ErrTransactionContention.
func (s *Store) RunTransaction(ctx context.Context, fn ports.TxFunc) error {
	err := s.client.RunTransaction(ctx, func(_ context.Context, t *firestore.Transaction) error {
		tx := &txReader{store: s, t: t}
		ws := &ports.WriteSet{}
		if err := fn(tx, ws); err != nil {
			return err
		}
		return s.applyWrites(t, ws)
	})
	if status.Code(err) == codes.Aborted {
		return errors.Join(ports.ErrTransactionContention, err)
	}
	return err
}

func (s *Store) applyWrites(t *firestore.Transaction, ws *ports.WriteSet) error {
	for _, write := range ws.Writes() {
		switch write.Kind {
		case ports.StagedSet:
			if err := t.Set(s.docRef(write.Ref), s.denormalizeDocument(write.Doc)); err != nil {
				return err
			}
		case ports.StagedUpdate:
			if err := t.Update(s.docRef(write.Ref), s.denormalizePatch(write.Patch)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Watch subscribes to a document via Firestore snapshot listeners.
func (s *Store) Watch(ctx context.Context, ref kernel.Ref, fn func(ports.Document, bool)) (ports.Unsubscribe, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	iter := s.docRef(ref).Snapshots(watchCtx)

	go func() {
		defer iter.Stop()
		for {
			snap, err := iter.Next()
			if err != nil {
				return
			}
			if !snap.Exists() {
				fn(nil, false)
				continue
			}
			fn(normalizeDocument(snap.Data()), true)
		}
	}()

	return func() { cancel() }, nil
}

type txReader struct {
	store *Store
	t     *firestore.Transaction
}

func (tx *txReader) Get(ref kernel.Ref) (ports.Document, bool, error) {
	if err := ref.Validate(); err != nil {
		return nil, false, err
	}

	snap, err := tx.t.Get(tx.store.docRef(ref))
	if status.Code(err) == codes.NotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return normalizeDocument(snap.Data()), true, nil
}
