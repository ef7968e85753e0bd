package order

import (
	"fmt"

	"github.com/RodrigoFK06/rapiditos/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfilment workflow.
//
// State transitions:
//
//	New ──> Preparing ──> Dispatching ──> Completed
//	 │          │              │
//	 └──────────┴──────────────┴──> Cancelled
//
// Completed and Cancelled are terminal: no further transitions are allowed.
// Rider assignment is not a status transition; it only binds references on
// the order and is valid in any non-terminal state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status set by the client-facing app at checkout.
	New

	// Preparing indicates the restaurant accepted the order and a pickup
	// PIN has been generated for the rider/restaurant handoff.
	Preparing

	// Dispatching indicates the order left the restaurant and is on its way.
	Dispatching

	// Completed indicates the order has been delivered. Terminal.
	Completed

	// Cancelled indicates the order was aborted before delivery. Terminal.
	Cancelled
)

// Wire values are the literals the production documents store under "estado".
// The platform predates this backend and the client app still writes Spanish
// literals; they are part of the schema, not a display concern.
const (
	wireNew         = "Nuevo"
	wirePreparing   = "Preparando"
	wireDispatching = "Enviando"
	wireCompleted   = "Completados"
	wireCancelled   = "Cancelado"
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		New:         "New",
		Preparing:   "Preparing",
		Dispatching: "Dispatching",
		Completed:   "Completed",
		Cancelled:   "Cancelled",
	}
}

func getWireValues() map[Status]string {
	//nolint:exhaustive // Unknown has no wire form by design
	return map[Status]string{
		New:         wireNew,
		Preparing:   wirePreparing,
		Dispatching: wireDispatching,
		Completed:   wireCompleted,
		Cancelled:   wireCancelled,
	}
}

// StatusFromWire maps a stored "estado" literal to a Status.
// Returns an error for literals outside the known set.
func StatusFromWire(s string) (Status, error) {
	for status, wire := range getWireValues() {
		if wire == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a known order status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getWireValues()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// WireValue returns the literal stored in the document database for this status.
// Calling it on an invalid status returns an empty string.
func (s Status) WireValue() string {
	return getWireValues()[s]
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// ValidateAssignable checks that an order in this status may have a rider
// bound to it. Assignment is meaningful from any non-terminal state.
func (s Status) ValidateAssignable() error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.IsTerminal() {
		return errs.NewStateIsInvalidError("order", fmt.Sprintf("%s (terminal)", s))
	}
	return nil
}

// Prepare transitions the status to Preparing.
//
// Valid transitions:
//   - New -> Preparing
func (s Status) Prepare() (Status, error) {
	if s != New {
		return Unknown, errs.NewStateIsInvalidErrorWithCause("order", s.String(),
			fmt.Errorf("only %s orders can start preparation", New))
	}
	return Preparing, nil
}

// Dispatch transitions the status to Dispatching.
//
// Valid transitions:
//   - Preparing -> Dispatching
func (s Status) Dispatch() (Status, error) {
	if s != Preparing {
		return Unknown, errs.NewStateIsInvalidErrorWithCause("order", s.String(),
			fmt.Errorf("only %s orders can be dispatched", Preparing))
	}
	return Dispatching, nil
}

// Complete transitions the status to Completed.
//
// Completion carries mandatory cross-entity side effects, so it must always
// run through the lifecycle coordinator, never through a bare status update.
// Any valid non-Completed status may complete; the coordinator handles the
// already-Completed case as an idempotent no-op before calling this.
func (s Status) Complete() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s == Completed {
		return Unknown, errs.NewStateIsInvalidError("order", "already completed")
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid from any non-terminal state.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewStateIsInvalidError("order", fmt.Sprintf("%s (terminal)", s))
	}
	return Cancelled, nil
}
