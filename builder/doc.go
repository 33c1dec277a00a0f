// Package builder generates synthetic weighted undirected graphs for the
// shortest-path benchmark.
//
// Three topologies are provided, each behind the Generator interface:
//
//   - Full:    the complete graph K_n, one random weight per unordered pair.
//   - Partial: a connected sparse graph. A random walk over the pool of
//     unvisited vertices lays down a spanning structure, then random
//     non-adjacent pairs are joined until a target density drawn from
//     [MinDensity, MaxDensity] is met.
//   - Tree:    a random labeled tree decoded from a random Prüfer
//     sequence.
//
// All randomness flows through the *rng.Source handed to the constructor;
// generators never own a private generator. Edge weights default to
// UniformWeightFn(MinRandomWeight, MaxRandomWeight).
//
// Functional options (Option) follow the package-wide rule: option
// constructors panic on meaningless values, generators return sentinel
// errors (ErrTooFewVertices, ErrNeedRandSource, ...) and never panic.
//
// Example:
//
//	src := rng.New(42)
//	g, err := builder.NewPartial(src).Generate(100)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(g.VertexCount(), g.EdgeCount())
package builder
