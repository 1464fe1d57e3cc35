// Package agglomerative implements classical bottom-up hierarchical
// clustering: every point starts as its own singleton cluster, and
// the closest pair of clusters is merged repeatedly until the
// requested number of clusters remains. "Closest" is defined by a
// configurable Linkage — single, complete, average, or centroid.
package agglomerative
