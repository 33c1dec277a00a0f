// Package builder defines shared constants used by the generators, ensuring
// consistent defaults and validation across all topologies.
package builder

//-----------------------------------------------------------------------------
// Generator Names
//   display names; also used to prefix errors with the generator context.
//-----------------------------------------------------------------------------

const (
	// NameFull is the display name of the complete-graph generator.
	NameFull = "Full"
	// NamePartial is the display name of the sparse connected generator.
	NamePartial = "Partial"
	// NameTree is the display name of the Prüfer-tree generator.
	NameTree = "Tree"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinVertices is the smallest vertex count every generator accepts.
// A Tree of 2 vertices degenerates to a single edge.
const MinVertices = 2

//-----------------------------------------------------------------------------
// Weights and Density
//-----------------------------------------------------------------------------

// MinRandomWeight is the inclusive lower bound of generated edge weights.
const MinRandomWeight int64 = 1

// MaxRandomWeight is the inclusive upper bound of generated edge weights.
const MaxRandomWeight int64 = 10

// MinDensity is the default lower bound of the Partial target density.
const MinDensity = 0.4

// MaxDensity is the default upper bound of the Partial target density.
const MaxDensity = 0.5
