// Package sim provides the deterministic CPU-scheduling engine behind
// QuantumQueue's solver-comparison checks.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: Process input records and validation
//   - policy.go: the seven policy variants (selection comparator +
//     preemption predicate + quantum flag) and the policy registry
//   - simulator.go: the shared discrete-time loop that runs them all
//
// # Architecture
//
// The sim package owns CPU scheduling; related concerns live in
// sub-packages:
//   - sim/paging/: page-replacement engine (FIFO, LRU, Optimal,
//     Second-Chance, Clock)
//   - sim/trace/: pure record types (timeline slots, access logs,
//     frame snapshots)
//
// Every simulation is a pure function of its input: the engine copies
// caller records before mutating anything, performs no I/O, never logs,
// and produces byte-identical results for identical inputs. The only
// termination safeguard is the simulation horizon, surfaced as a
// Truncated flag on the result rather than an error.
package sim
