// Package assignment contains the Assignment record: the immutable join
// document binding one rider to one order.
package assignment

import (
	"errors"
	"time"

	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
)

var (
	// ErrAssignmentIsNotConstructed is returned when an Assignment was not
	// created through NewAssignment or RestoreAssignment.
	ErrAssignmentIsNotConstructed = errors.New(
		"Assignment must be created via NewAssignment or RestoreAssignment")
)

// StatusAssigned is the only status an assignment record ever carries. The
// record is written once by the coordinator and never mutated; a reassigned
// order would be superseded by a new record, not an update.
const StatusAssigned = "assigned"

// Assignment is the immutable record created once per successful rider
// assignment. It links the order, the rider, the client, and the client's
// delivery address at the moment of assignment.
type Assignment struct {
	ref kernel.Ref

	orderRef         kernel.Ref
	riderRef         kernel.Ref
	clientRef        kernel.Ref
	clientAddressRef kernel.Ref

	status    string
	createdAt time.Time

	isConstructed bool
}

// NewAssignment creates a fresh assignment record for a rider binding.
// All four references are required; assignment is refused for orders with
// unresolvable client or address references, so there is no tolerant path here.
func NewAssignment(ref, orderRef, riderRef, clientRef, clientAddressRef kernel.Ref, createdAt time.Time) (*Assignment, error) {
	if err := errors.Join(
		ref.Validate(),
		orderRef.Validate(),
		riderRef.Validate(),
		clientRef.Validate(),
		clientAddressRef.Validate(),
	); err != nil {
		return nil, err
	}

	return &Assignment{
		ref:              ref,
		orderRef:         orderRef,
		riderRef:         riderRef,
		clientRef:        clientRef,
		clientAddressRef: clientAddressRef,
		status:           StatusAssigned,
		createdAt:        createdAt,
		isConstructed:    true,
	}, nil
}

// RestoreAssignment reconstructs an assignment record from persistence.
// Legacy records may miss references; only the identity is required on restore.
func RestoreAssignment(ref, orderRef, riderRef, clientRef, clientAddressRef kernel.Ref, status string, createdAt time.Time) (*Assignment, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	return &Assignment{
		ref:              ref,
		orderRef:         orderRef,
		riderRef:         riderRef,
		clientRef:        clientRef,
		clientAddressRef: clientAddressRef,
		status:           status,
		createdAt:        createdAt,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Assignment was properly constructed.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// Ref returns the assignment's document reference.
func (a *Assignment) Ref() kernel.Ref {
	return a.ref
}

// OrderRef returns the bound order reference.
func (a *Assignment) OrderRef() kernel.Ref {
	return a.orderRef
}

// RiderRef returns the bound rider reference.
func (a *Assignment) RiderRef() kernel.Ref {
	return a.riderRef
}

// ClientRef returns the client reference captured at assignment time.
func (a *Assignment) ClientRef() kernel.Ref {
	return a.clientRef
}

// ClientAddressRef returns the delivery address reference captured at assignment time.
func (a *Assignment) ClientAddressRef() kernel.Ref {
	return a.clientAddressRef
}

// Status returns the record status, "assigned" for all records this backend writes.
func (a *Assignment) Status() string {
	return a.status
}

// CreatedAt returns the assignment creation time.
func (a *Assignment) CreatedAt() time.Time {
	return a.createdAt
}
