// Package commentaccess implements field-level comment operations on BRDs,
// fronted by the role/status/assignment access decision engine.
//
// Layering:
// - domain: comment group entities, access decision rules, errors
// - application: commands/queries sharing one access guard
// - ports: stable boundaries for BRD reads, assignment lookup, comment storage
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Decisions are computed fresh per request and never cached; BRD status and
//   assignments can change between calls.
// - The assignment lookup is only consulted after the status gate passes;
//   callers rely on that short circuit.
package commentaccess
