// Package pathfind implements four single-pair shortest-path solvers over
// the immutable core.Graph:
//
//	– Dijkstra:       naive O(V²) selection by linear scan, early stop at the target.
//	– Floyd-Warshall: all-pairs closure, O(V³), recomputed on every call.
//	– Bellman-Ford:   exactly V-1 passes over the edge list, O(V·E).
//	– SPFA:           queue-driven Bellman-Ford, O(V·E) worst case.
//
// All solvers satisfy the Pathfinder interface and agree on the total weight
// of the returned path for any query (paths may differ on ties).
//
// Conventions:
//
//	– Weights are positive; negative cycles cannot occur and are not checked.
//	– Distances use core.Distance, whose zero value is infinity.
//	– Predecessors are optional per vertex; a missing predecessor on the walk
//	  back from the target means the target is unreachable (ErrNoPath).
//	– Pathfind(g, v, v) returns the single-vertex path [v].
//
// Errors (sentinel):
//
//	– ErrNilGraph         if g is nil.
//	– ErrVertexOutOfRange if from or to is not a vertex of g.
//	– ErrNoPath           if to cannot be reached from from.
//	– ErrUnknownSolver    from ByName for an unrecognized name.
//
// Example usage:
//
//	p, err := pathfind.Dijkstra{}.Pathfind(g, 0, 5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w, _ := p.Weight(g)
package pathfind
