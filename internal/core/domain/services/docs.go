// Package services provides the domain services of the order core: logic
// that does not belong to a single aggregate.
//
// The package includes:
//   - PricingEngine: the pure price computation over academic level,
//     days until deadline, and page count
//   - SlugService: deterministic slugification with sequential collision
//     probing against a uniqueness oracle
//   - AccessPolicy: the role-based authorization predicate consumed by the
//     application command and query handlers
package services
