package firestoredb

import (
	"cloud.google.com/go/firestore"

	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
	"github.com/RodrigoFK06/rapiditos/internal/core/ports"
)

// normalizeDocument converts raw Firestore data into a ports.Document:
// document references become kernel.Ref values, recursively through nested
// maps and arrays, so mapping code stays SDK-free.
func normalizeDocument(data map[string]any) ports.Document {
	doc := make(ports.Document, len(data))
	for field, value := range data {
		doc[field] = normalizeValue(value)
	}
	return doc
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case *firestore.DocumentRef:
		ref, err := kernel.NewRef(v.Parent.ID, v.ID)
		if err != nil {
			// a reference in a subcollection or with empty segments; keep the
			// raw path string so tolerant mappers can still try to parse it
			return v.Path
		}
		return ref
	case map[string]any:
		out := make(map[string]any, len(v))
		for field, item := range v {
			out[field] = normalizeValue(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return value
	}
}

// denormalizeDocument converts a ports.Document into Firestore write data,
// mapping the sentinels to the SDK's field transforms and kernel.Ref values
// back to document references.
func (s *Store) denormalizeDocument(doc ports.Document) map[string]any {
	out := make(map[string]any, len(doc))
	for field, value := range doc {
		if _, ok := value.(ports.FieldDelete); ok {
			// omitting the field from a full write is the deletion
			continue
		}
		out[field] = s.denormalizeValue(value)
	}
	return out
}

func (s *Store) denormalizePatch(patch ports.Patch) []firestore.Update {
	updates := make([]firestore.Update, 0, len(patch))
	for field, value := range patch {
		updates = append(updates, firestore.Update{
			Path:  field,
			Value: s.denormalizeValue(value),
		})
	}
	return updates
}

func (s *Store) denormalizeValue(value any) any {
	switch v := value.(type) {
	case kernel.Ref:
		return s.docRef(v)
	case ports.FieldServerTime:
		return firestore.ServerTimestamp
	case ports.FieldDelete:
		return firestore.Delete
	case ports.FieldIncrement:
		return firestore.Increment(v.Amount)
	case ports.Document:
		return s.denormalizeDocument(v)
	case map[string]any:
		return s.denormalizeDocument(ports.Document(v))
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = s.denormalizeValue(item)
		}
		return out
	default:
		return value
	}
}
