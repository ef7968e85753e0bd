// Package queries contains the read operations of the admin backend: the
// order views the dashboard renders, the rider assignment history, and the
// live order subscription. Queries never mutate state and return plain
// response structs, keeping the read side decoupled from the aggregates.
package queries
