// Package door implements the rotating-door angular momentum model.
//
// Two doors swing shut from the same initial angular velocity. Door A
// carries a point mass that slides outward along the leaf, growing its
// moment of inertia over time; Door B is rigid. Angular momentum for
// each door is fixed at initialization, so Door A slows down as its
// inertia grows while Door B keeps its initial rate until it hits the
// closing limit.
//
//   - [Params]: immutable run parameters
//   - [State]: full snapshot of both doors at one instant
//   - [Initialize]: builds the t=0 snapshot, fixing angular momenta
//   - [Advance]: pure state transition, one host tick
//
// # Purity
//
// Advance never mutates its input and never fails: degenerate inputs
// (zero inertia, negative dt) degrade to numeric edge values rather
// than errors, so a host animation loop is never interrupted.
package door
