// Package sim drives an N-body gravitational simulation and streams its
// progress as immutable snapshots.
//
// A [System] owns its bodies and a single solver for the lifetime of a run.
// Callers either drive time themselves with [System.Step] and
// [System.Snapshot], or let [System.AutoStep] run the loop on a producer
// goroutine and consume the bounded snapshot channel it returns.
//
// # Thread Safety
//
// The body array and the solver's scratch buffers belong exclusively to the
// goroutine calling Step. [Snapshot] values are immutable and safe to hand
// to any number of consumers.
package sim
