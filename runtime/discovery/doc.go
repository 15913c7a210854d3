// Package discovery implements the BRP format discovery engine.
//
// # Overview
//
// Given the name of a registered component type, the engine analyzes the
// type's structural descriptor (see the registry package) and produces two
// things: a spawn example suitable for constructing a new instance over the
// wire, and a catalog of mutation paths for partially updating an existing
// instance. Both are assembled into a FormatInfo per type.
//
// Discovery is transient by design: every call resolves types fresh against
// the registry and nothing is cached between calls. The registry read lock is
// taken per lookup, never across the recursive walk.
//
// # Error policy
//
// Per-type failures never abort a batch. Within a type the policy is
// asymmetric: spawn generation failures are fatal for the type, while
// mutation generation failures are absorbed into an empty MutationInfo.
// Field-level failures during struct spawn generation are collected and
// reported together rather than short-circuiting at the first one.
//
// # Tracing
//
// All generators thread an optional *Trace. A nil trace is a valid no-op
// sink, so there are no separate debug and non-debug code paths. The
// process-wide debug flag controls only whether a trace is created and its
// messages attached to responses.
//
// # Limits
//
// The recursive walk has no depth limit and no cycle detection: a
// self-referential registered type recurses until resource exhaustion.
package discovery
