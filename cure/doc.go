// Package cure implements CURE (Clustering Using REpresentatives), an
// agglomerative algorithm that represents each cluster by a bounded set
// of representative points shrunk toward the cluster mean, giving it
// robustness to non-spherical cluster shapes that centroid-only methods
// lack. A kd-tree indexes every live representative point so that, after
// each merge, only clusters whose cached nearest neighbor was absorbed
// need their neighbor recomputed.
//
// Based on S. Guha, R. Rastogi, K. Shim, "CURE: An Efficient Clustering
// Algorithm for Large Databases" (1998).
package cure
