package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
	"github.com/RodrigoFK06/rapiditos/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the RestoreOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via RestoreOrder")
)

// Order is the aggregate the lifecycle coordinator acts on. Orders are created
// by the client-facing app, never by this backend, so the only constructor is
// RestoreOrder, which rebuilds the aggregate from a persisted document.
//
// Order maintains these invariants:
//   - Assigned() is true iff both the rider ref and the assignment ref are set
//   - Completed is terminal: status, rider ref, and assignment ref never change
//     after completion
//   - The delivery timestamp is written once and never overwritten
type Order struct {
	ref kernel.Ref

	status       Status
	adminVisible bool
	active       bool
	assigned     bool
	readyToPay   bool

	clientRef        kernel.Ref
	clientAddressRef kernel.Ref
	riderRef         kernel.Ref
	assignmentRef    kernel.Ref
	restaurantRef    kernel.Ref

	total       float64
	deliveryFee float64
	pickupPIN   string

	createdAt   time.Time
	deliveredAt *time.Time

	isConstructed bool
}

// Restored carries the persisted state of an order document. Reference fields
// left as zero Refs mean the document does not carry that reference; legacy
// records frequently lack client or address refs.
type Restored struct {
	Status       Status
	AdminVisible bool
	Active       bool
	Assigned     bool
	ReadyToPay   bool

	ClientRef        kernel.Ref
	ClientAddressRef kernel.Ref
	RiderRef         kernel.Ref
	AssignmentRef    kernel.Ref
	RestaurantRef    kernel.Ref

	Total       float64
	DeliveryFee float64
	PickupPIN   string

	CreatedAt   time.Time
	DeliveredAt *time.Time
}

// RestoreOrder reconstructs an order aggregate from persistence.
//
// Only the identity and the status are hard requirements: the production
// collection contains legacy documents with missing references, and the
// coordinator's job includes tolerating them. Per-operation validation
// happens in the lifecycle operations themselves.
func RestoreOrder(ref kernel.Ref, restored Restored) (*Order, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}
	if err := restored.Status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		ref:              ref,
		status:           restored.Status,
		adminVisible:     restored.AdminVisible,
		active:           restored.Active,
		assigned:         restored.Assigned,
		readyToPay:       restored.ReadyToPay,
		clientRef:        restored.ClientRef,
		clientAddressRef: restored.ClientAddressRef,
		riderRef:         restored.RiderRef,
		assignmentRef:    restored.AssignmentRef,
		restaurantRef:    restored.RestaurantRef,
		total:            restored.Total,
		deliveryFee:      restored.DeliveryFee,
		pickupPIN:        restored.PickupPIN,
		createdAt:        restored.CreatedAt,
		deliveredAt:      restored.DeliveredAt,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their document reference.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.ref.IsEqual(other.ref)
}

// Ref returns the order's document reference.
func (o *Order) Ref() kernel.Ref {
	return o.ref
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// AdminVisible reports whether the client app confirmed the order, making it
// eligible for admin-side operations.
func (o *Order) AdminVisible() bool {
	return o.adminVisible
}

// Active reports whether the order is not yet fulfilled.
func (o *Order) Active() bool {
	return o.active
}

// ReadyToPay reports whether the order entered preparation and can be paid.
func (o *Order) ReadyToPay() bool {
	return o.readyToPay
}

// Assigned reports whether a rider is bound to the order. This is the
// invariant form: the flag alone does not count, both references must be set.
func (o *Order) Assigned() bool {
	return o.assigned && !o.assignmentRef.IsZero() && !o.riderRef.IsZero()
}

// AssignedFlag returns the raw "asigned" flag as stored, which may disagree
// with the references on legacy documents. The reconciliation sweep compares
// it against Assigned().
func (o *Order) AssignedFlag() bool {
	return o.assigned
}

// ClientRef returns the reference to the ordering client, zero if absent.
func (o *Order) ClientRef() kernel.Ref {
	return o.clientRef
}

// ClientAddressRef returns the delivery address reference, zero if absent.
func (o *Order) ClientAddressRef() kernel.Ref {
	return o.clientAddressRef
}

// RiderRef returns the assigned rider reference, zero if unassigned.
func (o *Order) RiderRef() kernel.Ref {
	return o.riderRef
}

// AssignmentRef returns the assignment record reference, zero if unassigned.
func (o *Order) AssignmentRef() kernel.Ref {
	return o.assignmentRef
}

// RestaurantRef returns the restaurant reference, zero if absent.
func (o *Order) RestaurantRef() kernel.Ref {
	return o.restaurantRef
}

// Total returns the order total.
func (o *Order) Total() float64 {
	return o.total
}

// DeliveryFee returns the delivery fee, zero when the document has none.
func (o *Order) DeliveryFee() float64 {
	return o.deliveryFee
}

// PickupPIN returns the handoff PIN, empty before preparation starts.
func (o *Order) PickupPIN() string {
	return o.pickupPIN
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveredAt returns the delivery timestamp, nil before completion.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// HasClientRefs reports whether both the client and the client address
// references resolve. Assignment requires them; legacy records may lack them.
func (o *Order) HasClientRefs() bool {
	return !o.clientRef.IsZero() && !o.clientAddressRef.IsZero()
}

// Assign binds a rider and an assignment record to the order.
//
// Business rules:
//   - The order must be in a non-terminal status
//   - The order must not already be assigned (reassignment is not supported;
//     the coordinator treats it as an idempotent no-op before calling this)
//   - Both references must be valid
func (o *Order) Assign(riderRef, assignmentRef kernel.Ref) error {
	if err := riderRef.Validate(); err != nil {
		return err
	}
	if err := assignmentRef.Validate(); err != nil {
		return err
	}
	if err := o.status.ValidateAssignable(); err != nil {
		return err
	}
	if o.Assigned() {
		return errs.NewStateIsInvalidError("order", "already assigned")
	}

	o.riderRef = riderRef
	o.assignmentRef = assignmentRef
	o.assigned = true
	return nil
}

// Complete marks the order as delivered.
//
// The status moves to Completed and the order leaves the active set. The
// delivery timestamp is not touched here: persistence preserves an existing
// one and stamps the database server time otherwise, so clock skew between
// backend instances never rewrites history. Calling Complete on a completed
// order is an error; the coordinator short-circuits that case as an
// idempotent no-op.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.active = false
	return nil
}

// MarkPreparing moves a new order into preparation, storing the pickup PIN
// used for the rider/restaurant handoff and opening the order for payment.
func (o *Order) MarkPreparing(pin string) error {
	if err := validatePickupPIN(pin); err != nil {
		return err
	}

	newStatus, err := o.status.Prepare()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.pickupPIN = pin
	o.readyToPay = true
	o.active = true
	return nil
}

// MarkDispatching moves a preparing order onto the road.
func (o *Order) MarkDispatching() error {
	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel aborts a non-terminal order. The order leaves the active set; a
// terminal timestamp is stamped only if none exists yet.
func (o *Order) Cancel(now time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.active = false
	if o.deliveredAt == nil {
		o.deliveredAt = &now
	}
	return nil
}

// ValidateAssignmentConsistency verifies the assignment invariant: the
// "asigned" flag must hold exactly when both the rider and assignment
// references are set. Used by the reconciliation sweep over legacy data.
func (o *Order) ValidateAssignmentConsistency() error {
	refsSet := !o.assignmentRef.IsZero() && !o.riderRef.IsZero()
	if o.assigned && !refsSet {
		return errs.NewDataIsMissingError("order",
			fmt.Sprintf("%s is flagged assigned but misses rider/assignment refs", o.ref))
	}
	if !o.assigned && refsSet {
		return errs.NewStateIsInvalidError("order",
			fmt.Sprintf("%s carries rider/assignment refs but is not flagged assigned", o.ref))
	}
	return nil
}

func validatePickupPIN(pin string) error {
	if len(pin) != 3 {
		return errs.NewValueIsInvalidErrorWithCause("pickupPIN",
			fmt.Errorf("%q is not a 3-digit code", pin))
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return errs.NewValueIsInvalidErrorWithCause("pickupPIN",
				fmt.Errorf("%q is not a 3-digit code", pin))
		}
	}
	return nil
}
