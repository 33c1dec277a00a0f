// Package bench drives the shortest-path benchmark.
//
// A run is the cross product
//
//	topology × configured vertex count × solver
//
// and each element of it is a cell. For every (topology, vertex count) one
// graph is generated; for each of Trials random endpoint pairs every solver is
// timed Repeats times. A cell's timings are aggregated with gonum/stat and
// written to the Sink as one Record, then reported to the Progress observer.
//
// The driver is single-threaded: cells never overlap, and the context is only
// consulted between graphs, so a cell is never cut short. Any generator or
// solver failure aborts the run; nothing is retried.
package bench
