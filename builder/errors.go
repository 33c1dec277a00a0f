// SPDX-License-Identifier: MIT
// Package: pathbench/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Generators attach context with %w: "<Name>: <detail>: <sentinel>".
//   - Generators never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates a vertex count below MinVertices.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a generator constructed with a nil *rng.Source.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidSequence indicates a Prüfer sequence of the wrong length or with
// a label outside [1, n].
var ErrInvalidSequence = errors.New("builder: invalid Prüfer sequence")

// ErrUnknownTopology indicates ByName was asked for a generator that does
// not exist.
var ErrUnknownTopology = errors.New("builder: unknown topology")

// ErrConstructFailed indicates the generator could not satisfy its own
// invariants (for example a core.Builder rejected an edge it produced).
var ErrConstructFailed = errors.New("builder: construction failed")
