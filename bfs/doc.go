// Package bfs provides breadth-first search over a core.Graph, returning
// hop depths, parent links and the visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Result holds Order (visit sequence), per-vertex depth and parent.
//   - Hooks: OnVisit (may abort with an error).
//   - WithFilterEdge drops individual edges from the traversal, which is how
//     callers test "does removing this edge disconnect the graph".
//   - WithMaxDepth limits exploration (d > 0) or disables the limit (d == 0).
//
// Determinism
//
//	core.Graph.Neighbors is sorted by neighbor id and BFS enqueues in that
//	order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:  O(V + E)
//   - Space: O(V)
//
// Weights are ignored: BFS counts hops. Use package pathfind for weighted
// shortest paths.
package bfs
