// Package kmeans implements Lloyd's algorithm: assign every point to
// its nearest center, recompute each center as its cluster's
// arithmetic mean, and repeat until centers stop moving.
package kmeans
