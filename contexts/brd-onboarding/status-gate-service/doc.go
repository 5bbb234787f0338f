// Package statusgate implements the BRD status transition gate inside brdflow.
//
// Layering:
// - domain: BRD entity, workflow statuses, transition eligibility rules, errors
// - application: commands/queries/workers using explicit ports
// - ports: stable boundaries for persistence/history/outbox
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under brd-onboarding context.
// - Do not import other context adapters into domain/application.
// - Role and identity arrive as explicit request parameters; the module keeps
//   no ambient session state.
package statusgate
