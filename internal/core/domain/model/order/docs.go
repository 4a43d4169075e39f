// Package order contains the Order aggregate of the academic-writing service
// together with its value objects: the order status and payment status state
// machines, academic level and paper type enumerations, price quotes, and the
// human-readable order number.
//
// The aggregate owns the order lifecycle invariants:
//   - the order number is generated once at creation and never changes
//   - status moves only along the legal edges defined by Status
//   - the total price is recomputed whenever the page count changes
//   - the completion timestamp is stamped exactly once
//
// Authorization (who may trigger which mutation) is not decided here; that is
// the job of services.AccessPolicy and the application command handlers. The
// aggregate only guarantees that whatever mutation is applied keeps the order
// consistent.
package order
