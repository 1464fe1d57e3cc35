// Package kmedoids implements k-medoids (PAM-style) clustering:
// assignment as in k-means, but each center is always an actual
// dataset member — the medoid update replaces each cluster's medoid
// with whichever member minimizes total intra-cluster dissimilarity —
// which makes it usable with any metric, not just ones with a
// well-defined mean.
package kmedoids
