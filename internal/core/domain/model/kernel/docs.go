// Package kernel contains the shared value objects of the domain model.
//
// It currently holds the UUID identifier type used by every aggregate.
// Kernel types are immutable, constructor-validated, and carry no behavior
// beyond what their invariants require.
package kernel
