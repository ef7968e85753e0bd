// Package order contains the Order aggregate and its lifecycle state machine.
//
// Orders are created by the client-facing app and enter this backend's view
// only once confirmed (admin-visible). The aggregate enforces the status
// transitions and the assignment invariant; the cross-entity choreography of
// assignment and completion lives in the application-layer command handlers.
package order
