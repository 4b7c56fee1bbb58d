// Package dynamo provides the core primitives for fixed-step simulation of
// second-order systems.
//
// The package defines the shared types every scenario is built from:
//
//   - [Sample]: acceleration, velocity and position at one time index
//   - [Law]: acceleration as a function of the current state
//   - [Constraint]: a correction applied after each unconstrained step
//   - [Stepper]: one fixed-step numerical update
//   - [Trajectory]: parallel sequences produced by a run
//
// It also owns the two reusable sequence helpers, [TimeSpan] and
// [Compress], so that every scenario shares one definition of each.
//
// # Example
//
//	span, _ := dynamo.TimeSpan(0, 5, 0.01)
//	trace, _ := traj.Compress(30)
//
// # Numerics
//
// All arithmetic is plain float64. NaN and Inf produced by ill-chosen
// parameters propagate silently unless the caller opts into validation.
package dynamo
