// Package hierarchical implements the classical centroid-linkage
// variant of bottom-up clustering: it is a convenience wrapper over
// agglomerative with Linkage fixed to CentroidLink, matching the
// original standalone "hierarchical" algorithm this package distills.
package hierarchical
