// Package rock implements ROCK clustering for categorical and
// link-based data: points are connected by an adjacency matrix at a
// fixed radius, and clusters are merged by maximizing a goodness
// measure derived from the number of links between them, scaled by a
// size-normalization exponent controlled by a threshold parameter.
package rock
