// Package kmedians implements k-medians clustering: assignment as in
// k-means, but each center is updated to its cluster's per-dimension
// median rather than its mean, which is more robust to outliers.
package kmedians
