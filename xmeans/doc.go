// Package xmeans implements X-means: k-means augmented with structure
// discovery. Starting from an initial seed set, it alternates running
// k-means to convergence with an "improve structure" phase that
// attempts to split each cluster in two, keeping the split only when
// it improves a model-selection criterion (BIC or MNDL), until no
// cluster improves by splitting or the cluster count reaches a
// configured maximum.
//
// Based on: D. Pelleg, A. Moore, "X-means: Extending K-means with
// Efficient Estimation of the Number of Clusters", ICML 2000.
package xmeans
