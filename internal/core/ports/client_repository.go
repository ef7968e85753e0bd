package ports

import (
	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
)

// ClientRepository defines the write contract on client (user) documents.
// The coordinator never reads clients; it only stages the session-field
// cleanup that closes a delivery on the client's side.
type ClientRepository interface {
	// StageSessionCleanup stages the removal of the client's per-delivery
	// session fields: the chat reference, the rider reference, the order
	// back-reference, and the active-order marker.
	//
	// The write is an existing-document patch; callers treat its failure as
	// non-fatal because legacy client documents may already lack the fields
	// or may have been deleted.
	StageSessionCleanup(w *WriteSet, clientRef kernel.Ref)
}
