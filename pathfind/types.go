package pathfind

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathbench/core"
)

// Display names, stable across releases; they appear in reports.
const (
	NameDijkstra      = "Dijkstra"
	NameFloydWarshall = "Floyd-Warshall"
	NameBellmanFord   = "Bellman-Ford"
	NameSPFA          = "SPFA"
)

// Pathfinder finds one shortest path between two vertices.
type Pathfinder interface {
	// Name returns the stable display name of the solver.
	Name() string

	// Pathfind returns a minimum-weight path from `from` to `to`, both ends
	// included. The graph is only read.
	Pathfind(g *core.Graph, from, to core.Vertex) (core.Path, error)
}

// All returns the four solvers in canonical order.
func All() []Pathfinder {
	return []Pathfinder{Dijkstra{}, FloydWarshall{}, BellmanFord{}, SPFA{}}
}

// Names returns the display names of All, in order.
func Names() []string {
	return []string{NameDijkstra, NameFloydWarshall, NameBellmanFord, NameSPFA}
}

// ByName resolves a solver by display name, case-insensitively.
func ByName(name string) (Pathfinder, error) {
	for _, p := range All() {
		if strings.EqualFold(p.Name(), name) {
			return p, nil
		}
	}

	return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownSolver, name, strings.Join(Names(), ", "))
}

// validate checks the graph and both endpoints.
func validate(op string, g *core.Graph, from, to core.Vertex) error {
	if g == nil {
		return fmt.Errorf("%s: %w", op, ErrNilGraph)
	}
	if !g.HasVertex(from) {
		return fmt.Errorf("%s: from=%d (n=%d): %w", op, from, g.VertexCount(), ErrVertexOutOfRange)
	}
	if !g.HasVertex(to) {
		return fmt.Errorf("%s: to=%d (n=%d): %w", op, to, g.VertexCount(), ErrVertexOutOfRange)
	}

	return nil
}

// singleSource holds the per-call state shared by the single-source solvers.
// dist[v] is infinite until v is reached; prev[v] is meaningful only when
// hasPrev[v] is set.
type singleSource struct {
	dist    []core.Distance
	prev    []core.Vertex
	hasPrev []bool
}

// newSingleSource allocates state for n vertices with dist[from] = 0.
func newSingleSource(n int, from core.Vertex) *singleSource {
	s := &singleSource{
		dist:    make([]core.Distance, n),
		prev:    make([]core.Vertex, n),
		hasPrev: make([]bool, n),
	}
	s.dist[from] = core.Zero

	return s
}

// relax tries u→v with weight w and reports whether dist[v] improved.
// Infinite sources never relax.
func (s *singleSource) relax(u, v core.Vertex, w core.Weight) bool {
	if s.dist[u].IsInf() {
		return false
	}
	alt := s.dist[u].Plus(w)
	if !alt.Less(s.dist[v]) {
		return false
	}
	s.dist[v] = alt
	s.prev[v] = u
	s.hasPrev[v] = true

	return true
}

// path walks predecessors back from `to` and returns the forward path.
func (s *singleSource) path(op string, from, to core.Vertex) (core.Path, error) {
	if s.dist[to].IsInf() {
		return nil, fmt.Errorf("%s: %d -> %d: %w", op, from, to, ErrNoPath)
	}

	p := core.Path{to}
	for v := to; v != from; {
		// A chain longer than n would mean a predecessor cycle.
		if !s.hasPrev[v] || len(p) > len(s.prev) {
			return nil, fmt.Errorf("%s: %d -> %d: broken chain at %d: %w", op, from, to, v, ErrNoPath)
		}
		v = s.prev[v]
		p = append(p, v)
	}

	return p.Reverse(), nil
}
