// Package dbscan implements DBSCAN, density-based clustering that
// groups points reachable from each other through chains of
// sufficiently dense neighborhoods, leaving sparse points as noise.
//
// Based on M. Ester, H. Kriegel, J. Sander, X. Xu, "A Density-Based
// Algorithm for Discovering Clusters in Large Spatial Databases with
// Noise" (1996).
package dbscan
