// Package point defines the shared geometric primitives used across
// ccore's clustering and oscillatory-network algorithms: fixed-dimension
// points, datasets of points, and pluggable distance metrics.
//
// Points are borrowed everywhere in this module: no algorithm package
// copies or takes ownership of caller-supplied coordinate slices beyond
// what is needed to run, matching the borrowing discipline lvlath's
// core.Graph applies to vertex metadata.
package point
