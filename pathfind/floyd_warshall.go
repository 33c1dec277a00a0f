package pathfind

import (
	"fmt"

	"github.com/katalvlaran/pathbench/core"
)

// FloydWarshall answers each query by computing the full all-pairs table.
// Nothing is cached between calls; that cost is what the benchmark measures.
type FloydWarshall struct{}

// Name returns "Floyd-Warshall".
func (FloydWarshall) Name() string { return NameFloydWarshall }

// Pathfind builds the all-pairs table and reads one path out of it.
// The table is built for every query, reflexive ones included.
//
// Complexity: O(V³) time, O(V²) space.
func (fw FloydWarshall) Pathfind(g *core.Graph, from, to core.Vertex) (core.Path, error) {
	_, p, err := fw.query(g, from, to)

	return p, err
}

// query validates, builds the table and returns it with the path.
func (FloydWarshall) query(g *core.Graph, from, to core.Vertex) (*Table, core.Path, error) {
	if err := validate(NameFloydWarshall, g, from, to); err != nil {
		return nil, nil, err
	}

	t := AllPairs(g)
	p, err := t.Path(from, to)

	return t, p, err
}

// Table is an all-pairs shortest-path table in row-major layout.
// next[i*n+j] is the first hop on a shortest i→j path when hasNext is set.
type Table struct {
	n       int
	dist    []core.Distance
	next    []core.Vertex
	hasNext []bool
}

// AllPairs runs Floyd-Warshall over g. A nil graph yields an empty table
// whose lookups all fail with ErrVertexOutOfRange.
//
// Loop order is fixed (k → i → j). Only finite legs are combined, so
// infinity never takes part in arithmetic.
func AllPairs(g *core.Graph) *Table {
	if g == nil {
		return &Table{}
	}

	n := g.VertexCount()
	t := &Table{
		n:       n,
		dist:    make([]core.Distance, n*n),
		next:    make([]core.Vertex, n*n),
		hasNext: make([]bool, n*n),
	}

	// 1) diagonal and direct edges
	var i, j, k int
	for i = 0; i < n; i++ {
		t.dist[i*n+i] = core.Zero
		t.next[i*n+i] = i
		t.hasNext[i*n+i] = true
	}
	for _, e := range g.Edges() {
		t.set(e.U, e.V, core.Finite(e.Weight), e.V)
		t.set(e.V, e.U, core.Finite(e.Weight), e.U)
	}

	// 2) closure
	var ik, kj, cand core.Distance
	var baseI, baseK int
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			baseI = i * n
			ik = t.dist[baseI+k]
			if ik.IsInf() {
				continue
			}
			for j = 0; j < n; j++ {
				kj = t.dist[baseK+j]
				if kj.IsInf() {
					continue
				}
				cand = ik.Add(kj)
				if cand.Less(t.dist[baseI+j]) {
					t.dist[baseI+j] = cand
					t.next[baseI+j] = t.next[baseI+k]
					t.hasNext[baseI+j] = true
				}
			}
		}
	}

	return t
}

func (t *Table) set(u, v core.Vertex, d core.Distance, hop core.Vertex) {
	t.dist[u*t.n+v] = d
	t.next[u*t.n+v] = hop
	t.hasNext[u*t.n+v] = true
}

// VertexCount returns the order of the table.
func (t *Table) VertexCount() int { return t.n }

// Distance returns the shortest distance u→v (infinite when unreachable).
func (t *Table) Distance(u, v core.Vertex) (core.Distance, error) {
	if err := t.check("Table.Distance", u, v); err != nil {
		return core.Infinity, err
	}

	return t.dist[u*t.n+v], nil
}

// Path reconstructs a shortest u→v path by following first hops.
func (t *Table) Path(u, v core.Vertex) (core.Path, error) {
	const op = "Table.Path"
	if err := t.check(op, u, v); err != nil {
		return nil, err
	}
	if t.dist[u*t.n+v].IsInf() {
		return nil, fmt.Errorf("%s: %d -> %d: %w", op, u, v, ErrNoPath)
	}

	p := core.Path{u}
	for cur := u; cur != v; {
		if !t.hasNext[cur*t.n+v] || len(p) > t.n {
			return nil, fmt.Errorf("%s: %d -> %d: broken chain at %d: %w", op, u, v, cur, ErrNoPath)
		}
		cur = t.next[cur*t.n+v]
		p = append(p, cur)
	}

	return p, nil
}

func (t *Table) check(op string, u, v core.Vertex) error {
	if u < 0 || u >= t.n {
		return fmt.Errorf("%s: from=%d (n=%d): %w", op, u, t.n, ErrVertexOutOfRange)
	}
	if v < 0 || v >= t.n {
		return fmt.Errorf("%s: to=%d (n=%d): %w", op, v, t.n, ErrVertexOutOfRange)
	}

	return nil
}
