// Package memstore provides an in-memory ports.DocumentStore with the same
// transactional semantics as the hosted document database: per-document
// versioning, optimistic-concurrency transactions with bounded retries, and
// document change streams. It backs the test suites and local development.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
	"github.com/RodrigoFK06/rapiditos/internal/core/ports"
	"github.com/RodrigoFK06/rapiditos/internal/pkg/errs"
)

// txAttempts bounds the optimistic-concurrency retry loop, mirroring the
// hosted database's default.
const txAttempts = 5

type document struct {
	data    ports.Document
	version uint64
}

// Store is an in-memory document store. Safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	docs     map[string]*document
	watchers map[string]map[uint64]*watcher
	watchSeq uint64

	now func() time.Time
}

var _ ports.DocumentStore = (*Store)(nil)

// NewStore creates an empty store using the wall clock for server timestamps.
func NewStore() *Store {
	return NewStoreWithClock(time.Now)
}

// NewStoreWithClock creates an empty store with an injected clock, letting
// tests pin the value written for ports.ServerTimestamp sentinels.
func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{
		docs:     make(map[string]*document),
		watchers: make(map[string]map[uint64]*watcher),
		now:      now,
	}
}

// Get reads a single document.
func (s *Store) Get(_ context.Context, ref kernel.Ref) (ports.Document, bool, error) {
	if err := ref.Validate(); err != nil {
		return nil, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[ref.Path()]
	if !ok {
		return nil, false, nil
	}
	return copyDocument(doc.data), true, nil
}

// Set replaces a document, creating it if absent.
func (s *Store) Set(_ context.Context, ref kernel.Ref, doc ports.Document) error {
	if err := ref.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	s.setLocked(ref, doc)
	pending := s.collectNotificationsLocked(ref)
	s.mu.Unlock()

	dispatch(pending)
	return nil
}

// Update patches an existing document.
func (s *Store) Update(_ context.Context, ref kernel.Ref, patch ports.Patch) error {
	if err := ref.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	err := s.updateLocked(ref, patch)
	var pending []notification
	if err == nil {
		pending = s.collectNotificationsLocked(ref)
	}
	s.mu.Unlock()

	if err != nil {
		return err
	}
	dispatch(pending)
	return nil
}

// Query returns the documents of a collection matching all equality filters.
func (s *Store) Query(_ context.Context, collection string, filters ...ports.Filter) ([]ports.Snapshot, error) {
	if collection == "" {
		return nil, errs.NewValueIsRequiredError("collection")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prefix := collection + "/"
	var result []ports.Snapshot
	for path, doc := range s.docs {
		if len(path) <= len(prefix) || path[:len(prefix)] != prefix {
			continue
		}
		if !matches(doc.data, filters) {
			continue
		}
		ref, err := kernel.RefFromPath(path)
		if err != nil {
			return nil, err
		}
		result = append(result, ports.Snapshot{Ref: ref, Data: copyDocument(doc.data)})
	}
	return result, nil
}

// NewDocRef allocates a reference with a fresh unique id.
func (s *Store) NewDocRef(collection string) kernel.Ref {
	ref, err := kernel.NewRef(collection, uuid.NewString())
	if err != nil {
		// collection names come from kernel constants; a bad one is a programming error
		panic(err)
	}
	return ref
}

// RunTransaction executes fn with optimistic-concurrency retries. Documents
// read through the transaction are version-checked at commit; if any changed,
// the attempt is discarded and fn runs again against fresh state.
func (s *Store) RunTransaction(ctx context.Context, fn ports.TxFunc) error {
	for attempt := 0; attempt < txAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		tx := &txReader{store: s, reads: make(map[string]uint64)}
		ws := &ports.WriteSet{}
		if err := fn(tx, ws); err != nil {
			return err
		}

		committed, pending, err := s.commit(tx, ws)
		if err != nil {
			return err
		}
		if committed {
			dispatch(pending)
			return nil
		}
	}
	return ports.ErrTransactionContention
}

// Watch subscribes to a document. The callback fires with the current state
// immediately and again after every committed change, sequentially per
// subscription, until Unsubscribe is called or ctx is done.
func (s *Store) Watch(ctx context.Context, ref kernel.Ref, fn func(ports.Document, bool)) (ports.Unsubscribe, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	w := newWatcher(fn)
	path := ref.Path()

	s.mu.Lock()
	s.watchSeq++
	id := s.watchSeq
	if s.watchers[path] == nil {
		s.watchers[path] = make(map[uint64]*watcher)
	}
	s.watchers[path][id] = w

	var initial notification
	if doc, ok := s.docs[path]; ok {
		initial = notification{w: w, doc: copyDocument(doc.data), exists: true}
	} else {
		initial = notification{w: w, doc: nil, exists: false}
	}
	s.mu.Unlock()

	dispatch([]notification{initial})

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.watchers[path], id)
			if len(s.watchers[path]) == 0 {
				delete(s.watchers, path)
			}
			s.mu.Unlock()
			w.close()
		})
	}

	go func() {
		<-ctx.Done()
		unsubscribe()
	}()

	return unsubscribe, nil
}

type txReader struct {
	store *Store
	reads map[string]uint64
}

func (t *txReader) Get(ref kernel.Ref) (ports.Document, bool, error) {
	if err := ref.Validate(); err != nil {
		return nil, false, err
	}

	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	doc, ok := t.store.docs[ref.Path()]
	if !ok {
		t.reads[ref.Path()] = 0
		return nil, false, nil
	}
	t.reads[ref.Path()] = doc.version
	return copyDocument(doc.data), true, nil
}

// commit validates the transaction's read set against current versions and,
// if untouched, applies the staged writes atomically. The bool reports whether
// the commit went through; false with a nil error means a conflict to retry.
func (s *Store) commit(tx *txReader, ws *ports.WriteSet) (bool, []notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for path, version := range tx.reads {
		current := uint64(0)
		if doc, ok := s.docs[path]; ok {
			current = doc.version
		}
		if current != version {
			return false, nil, nil
		}
	}

	// Updates must hit existing documents; validate before mutating anything
	// so a failed transaction leaves no partial writes behind.
	for _, write := range ws.Writes() {
		if write.Kind == ports.StagedUpdate {
			if _, ok := s.docs[write.Ref.Path()]; !ok {
				return false, nil, errs.NewObjectNotFoundError(write.Ref.Collection(), write.Ref.ID())
			}
		}
	}

	touched := make(map[string]kernel.Ref)
	for _, write := range ws.Writes() {
		switch write.Kind {
		case ports.StagedSet:
			s.setLocked(write.Ref, write.Doc)
		case ports.StagedUpdate:
			if err := s.updateLocked(write.Ref, write.Patch); err != nil {
				return false, nil, err
			}
		}
		touched[write.Ref.Path()] = write.Ref
	}

	var pending []notification
	for _, ref := range touched {
		pending = append(pending, s.collectNotificationsLocked(ref)...)
	}
	return true, pending, nil
}

func (s *Store) setLocked(ref kernel.Ref, data ports.Document) {
	now := s.now()
	resolved := make(ports.Document, len(data))
	for field, value := range data {
		switch v := value.(type) {
		case ports.FieldServerTime:
			resolved[field] = now
		case ports.FieldIncrement:
			resolved[field] = v.Amount
		case ports.FieldDelete:
			// deleting a field of a full write is just omitting it
		default:
			resolved[field] = copyValue(value)
		}
	}

	doc, ok := s.docs[ref.Path()]
	if !ok {
		doc = &document{}
		s.docs[ref.Path()] = doc
	}
	doc.data = resolved
	doc.version++
}

func (s *Store) updateLocked(ref kernel.Ref, patch ports.Patch) error {
	doc, ok := s.docs[ref.Path()]
	if !ok {
		return errs.NewObjectNotFoundError(ref.Collection(), ref.ID())
	}

	now := s.now()
	for field, value := range patch {
		switch v := value.(type) {
		case ports.FieldServerTime:
			doc.data[field] = now
		case ports.FieldDelete:
			delete(doc.data, field)
		case ports.FieldIncrement:
			doc.data[field] = asFloat(doc.data[field]) + v.Amount
		default:
			doc.data[field] = copyValue(value)
		}
	}
	doc.version++
	return nil
}

func (s *Store) collectNotificationsLocked(ref kernel.Ref) []notification {
	subs := s.watchers[ref.Path()]
	if len(subs) == 0 {
		return nil
	}

	doc, exists := s.docs[ref.Path()]
	pending := make([]notification, 0, len(subs))
	for _, w := range subs {
		n := notification{w: w, exists: exists}
		if exists {
			n.doc = copyDocument(doc.data)
		}
		pending = append(pending, n)
	}
	return pending
}

func matches(data ports.Document, filters []ports.Filter) bool {
	for _, f := range filters {
		value, ok := data[f.Field]
		if !ok || !equalValues(value, f.Value) {
			return false
		}
	}
	return true
}

func equalValues(a, b any) bool {
	if ra, ok := a.(kernel.Ref); ok {
		rb, ok := b.(kernel.Ref)
		return ok && ra.IsEqual(rb)
	}
	if fa, ok := numeric(a); ok {
		fb, ok := numeric(b)
		return ok && fa == fb
	}
	return a == b
}

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func asFloat(v any) float64 {
	f, _ := numeric(v)
	return f
}

func copyDocument(data ports.Document) ports.Document {
	out := make(ports.Document, len(data))
	for field, value := range data {
		out[field] = copyValue(value)
	}
	return out
}

func copyValue(value any) any {
	switch v := value.(type) {
	case ports.Document:
		return copyDocument(v)
	case map[string]any:
		return map[string]any(copyDocument(v))
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = copyValue(item)
		}
		return out
	default:
		return value
	}
}
