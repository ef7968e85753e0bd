package kernel

import (
	"fmt"
	"strings"

	"github.com/RodrigoFK06/rapiditos/internal/pkg/errs"
	"github.com/RodrigoFK06/rapiditos/internal/pkg/guard"
)

// Collection names of the production document schema. The client-facing app
// owns these documents; the spellings (including the historical "asigned_rider")
// are part of the wire format and must not be "fixed" here.
const (
	CollectionOrders      = "orders"
	CollectionRiders      = "rider"
	CollectionAssignments = "asigned_rider"
	CollectionUsers       = "users"
	CollectionAddresses   = "client_address"
	CollectionRestaurants = "restaurant"
	CollectionChats       = "chats"
)

// ErrRefIsNotConstructed indicates that a Ref was not created through one of
// the constructor functions. The zero value of Ref is invalid.
var ErrRefIsNotConstructed = errs.NewValueIsRequiredError(
	"Ref must be created via NewRef, RefFromPath, or a collection helper")

// Ref is a value object identifying a single document in the store: a
// collection name plus a document id. It replaces the loosely-typed reference
// paths the legacy system passed around as strings: a Ref is parsed and
// validated once at the boundary, and business logic only ever sees the
// structured form.
//
// Ref is immutable and safe to pass by value. The zero value is invalid and
// fails Validate.
type Ref struct {
	collection string
	id         string
	guard      guard.ConstructorGuard
}

// NewRef creates a Ref from a collection name and document id.
// Both parts are required.
func NewRef(collection, id string) (Ref, error) {
	if collection == "" {
		return Ref{}, errs.NewValueIsRequiredError("collection")
	}
	if id == "" {
		return Ref{}, errs.NewValueIsRequiredError("id")
	}
	if strings.ContainsRune(collection, '/') || strings.ContainsRune(id, '/') {
		return Ref{}, errs.NewValueIsInvalidErrorWithCause("ref",
			fmt.Errorf("collection and id must not contain '/': %s / %s", collection, id))
	}

	return Ref{
		collection: collection,
		id:         id,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RefFromPath parses a legacy reference path such as "/rider/PNQu5KDsGuEjCoveAw6g"
// or "orders/abc123". Leading slashes are tolerated; anything other than exactly
// one collection segment and one id segment is rejected. Use this only at the
// boundary when accepting paths from old records or API clients.
func RefFromPath(path string) (Ref, error) {
	clean := strings.Trim(path, "/")
	parts := strings.Split(clean, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Ref{}, errs.NewValueIsInvalidErrorWithCause("refPath",
			fmt.Errorf("%q is not a {collection}/{id} path", path))
	}
	return NewRef(parts[0], parts[1])
}

// OrderRef creates a Ref into the orders collection.
func OrderRef(id string) (Ref, error) {
	return NewRef(CollectionOrders, id)
}

// RiderRef creates a Ref into the rider collection.
func RiderRef(id string) (Ref, error) {
	return NewRef(CollectionRiders, id)
}

// AssignmentRef creates a Ref into the asigned_rider collection.
func AssignmentRef(id string) (Ref, error) {
	return NewRef(CollectionAssignments, id)
}

// UserRef creates a Ref into the users collection.
func UserRef(id string) (Ref, error) {
	return NewRef(CollectionUsers, id)
}

// Validate ensures the Ref was created through a constructor.
func (r Ref) Validate() error {
	return r.guard.Validate(ErrRefIsNotConstructed)
}

// IsZero reports whether the Ref is the invalid zero value.
func (r Ref) IsZero() bool {
	return r.Validate() != nil
}

// Collection returns the collection segment of the reference.
func (r Ref) Collection() string {
	return r.collection
}

// ID returns the document id segment of the reference.
func (r Ref) ID() string {
	return r.id
}

// Path returns the "{collection}/{id}" form of the reference.
func (r Ref) Path() string {
	return r.collection + "/" + r.id
}

// String implements fmt.Stringer.
func (r Ref) String() string {
	return r.Path()
}

// IsEqual compares two refs by collection and id.
func (r Ref) IsEqual(other Ref) bool {
	return r.collection == other.collection && r.id == other.id
}

// In reports whether the reference points into the given collection.
func (r Ref) In(collection string) bool {
	return r.collection == collection
}
