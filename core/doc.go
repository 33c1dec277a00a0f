// Package core defines the immutable weighted undirected Graph used by the
// generators and shortest-path solvers, together with the Vertex, Weight,
// Distance and Path value types.
//
// A Graph is produced once through a Builder and is read-only afterwards:
//
//	b, err := core.NewBuilder(3)
//	if err != nil {
//	    return err
//	}
//	_ = b.AddEdge(0, 1, 4)
//	_ = b.AddEdge(1, 2, 2)
//	g := b.Build()
//
// Invariants of every built Graph:
//
//   - VertexCount() >= MinVertices; vertices are dense in [0, VertexCount()).
//   - Undirected: Weight(u,v) == Weight(v,u), and absence is symmetric.
//   - No self-loops, no parallel edges, every weight > 0.
//   - Edges() lists each undirected edge exactly once with U < V, sorted by
//     (U, V); len(Edges()) == EdgeCount().
//   - Neighbors(v) is sorted by neighbor id, so iteration is deterministic.
//
// Distances are represented by the Distance value type rather than a magic
// "infinity" integer: the zero Distance is infinite, finite values never
// overflow into it, and Less orders every finite value below infinity.
//
// Concurrency: a built Graph is safe for any number of concurrent readers.
// A Builder is not safe for concurrent use.
package core
