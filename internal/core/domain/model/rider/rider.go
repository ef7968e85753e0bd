// Package rider contains the Rider aggregate: a delivery agent with an
// availability flag and the counters the lifecycle coordinator reconciles on
// assignment and completion.
package rider

import (
	"errors"
	"time"

	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
)

var (
	// ErrRiderIsNotConstructed is returned when a Rider instance was not created
	// through the RestoreRider factory method.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via RestoreRider")
)

// Rider represents a delivery agent. Like orders, riders are registered by the
// client-facing app; this backend only reads them and reconciles counters, so
// the only constructor is RestoreRider.
//
// Invariant: the active-order counter never goes negative. Historical data
// contains riders whose counter drifted; decrements are floored at zero
// instead of trusting the stored value.
type Rider struct {
	ref kernel.Ref

	displayName string
	active      bool

	activeOrders        int
	completedDeliveries int
	earnings            float64

	assignmentRef kernel.Ref
	createdAt     time.Time

	isConstructed bool
}

// Restored carries the persisted state of a rider document.
type Restored struct {
	DisplayName         string
	Active              bool
	ActiveOrders        int
	CompletedDeliveries int
	Earnings            float64
	AssignmentRef       kernel.Ref
	CreatedAt           time.Time
}

// RestoreRider reconstructs a rider aggregate from persistence.
// A negative stored active-order counter is normalized to zero rather than
// rejected; the invariant is enforced going forward, not retroactively.
func RestoreRider(ref kernel.Ref, restored Restored) (*Rider, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	activeOrders := restored.ActiveOrders
	if activeOrders < 0 {
		activeOrders = 0
	}

	return &Rider{
		ref:                 ref,
		displayName:         restored.DisplayName,
		active:              restored.Active,
		activeOrders:        activeOrders,
		completedDeliveries: restored.CompletedDeliveries,
		earnings:            restored.Earnings,
		assignmentRef:       restored.AssignmentRef,
		createdAt:           restored.CreatedAt,
		isConstructed:       true,
	}, nil
}

// Validate ensures the Rider instance was properly constructed through RestoreRider.
func (r *Rider) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRiderIsNotConstructed
	}
	return nil
}

// Ref returns the rider's document reference.
func (r *Rider) Ref() kernel.Ref {
	return r.ref
}

// DisplayName returns the rider's display name.
func (r *Rider) DisplayName() string {
	return r.displayName
}

// Active reports whether the rider is available for assignment.
func (r *Rider) Active() bool {
	return r.active
}

// ActiveOrders returns the count of currently assigned, unfinished orders.
func (r *Rider) ActiveOrders() int {
	return r.activeOrders
}

// CompletedDeliveries returns the lifetime delivery counter.
func (r *Rider) CompletedDeliveries() int {
	return r.completedDeliveries
}

// Earnings returns the lifetime accumulated delivery fees.
func (r *Rider) Earnings() float64 {
	return r.earnings
}

// AssignmentRef returns the rider's current assignment pointer, zero if none.
func (r *Rider) AssignmentRef() kernel.Ref {
	return r.assignmentRef
}

// CreatedAt returns the registration timestamp.
func (r *Rider) CreatedAt() time.Time {
	return r.createdAt
}

// NextActiveOrders computes the active-order counter after one completion,
// floored at zero. The coordinator must call this on the value read inside
// the transaction, never on state captured before entering it.
func (r *Rider) NextActiveOrders() int {
	if r.activeOrders <= 0 {
		return 0
	}
	return r.activeOrders - 1
}
