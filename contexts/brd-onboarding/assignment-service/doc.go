// Package assignment implements BA/Biller assignment of BRDs inside brdflow.
//
// Layering:
// - domain: assignment entity, role constants, errors
// - application: single/batch reassignment commands and lookup queries
// - ports: stable boundaries for BRD reads, user directory, assignment storage
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Reassignment requires the MANAGER role; the check is a flat role gate,
//   independent of BRD status.
// - Batch reassignment is fail-soft: every item is processed and failures are
//   reported per item, never by aborting the batch.
package assignment
