// Package clientrepo implements the write-only client repository. The users
// collection belongs to the client-facing app; the coordinator only clears
// the per-delivery session fields when a delivery closes.
package clientrepo

import (
	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
	"github.com/RodrigoFK06/rapiditos/internal/core/ports"
	"github.com/RodrigoFK06/rapiditos/internal/pkg/errs"
)

// Session field names on user documents; the spellings are the wire format.
const (
	fieldChatRef      = "chat_ref"
	fieldRiderRef     = "rider_ref"
	fieldOrderRef     = "orderref"
	fieldActiveOrders = "activeorders"
)

// Repository implements ports.ClientRepository over a document store.
type Repository struct {
	store ports.DocumentStore
}

var _ ports.ClientRepository = (*Repository)(nil)

// NewRepository creates a client repository.
func NewRepository(store ports.DocumentStore) (*Repository, error) {
	if store == nil {
		return nil, errs.NewValueIsRequiredError("store")
	}
	return &Repository{store: store}, nil
}

// StageSessionCleanup stages the removal of the client's delivery session fields.
func (r *Repository) StageSessionCleanup(w *ports.WriteSet, clientRef kernel.Ref) {
	w.Update(clientRef, ports.Patch{
		fieldChatRef:      ports.DeleteField(),
		fieldRiderRef:     ports.DeleteField(),
		fieldOrderRef:     ports.DeleteField(),
		fieldActiveOrders: ports.DeleteField(),
	})
}
