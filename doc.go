// Package pathbench measures how shortest-path solvers scale on random
// weighted undirected graphs.
//
// Layout:
//
//	rng/           explicitly owned, seedable random source
//	core/          immutable Graph, Builder, Distance, Path
//	bfs/           breadth-first traversal, connectivity and tree checks
//	builder/       topology generators: Full, Partial, Tree (Prüfer)
//	pathfind/      Dijkstra, Floyd-Warshall, Bellman-Ford, SPFA
//	bench/         the sweep driver and its Record/Sink/Progress contracts
//	report/        CSV table, Prometheus textfile and slog progress sinks
//	config/        YAML configuration with defaults and validation
//	cmd/pathbench  the command-line entry point
//
// A run generates one graph per (topology, vertex count), draws random
// endpoint pairs, times every solver on them and writes one row per
// (topology, vertex count, solver):
//
//	topology,configured_vertex_count,vertex_count,edge_count,pathfinder,time_nanos
//	Full,10,10,45,Dijkstra,2140
//
// Everything is single-threaded and reproducible from one seed.
package pathbench
