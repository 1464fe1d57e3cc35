// Package hsyncnet implements HSyncNet, a hierarchical variant of
// github.com/gopherclust/ccore/syncnet that grows the connectivity
// radius round by round until the requested cluster count is reached,
// instead of requiring the caller to pick a radius up front.
//
// Based on J. Shao, X. He, C. Bohm, Q. Yang, C. Plant,
// "Synchronization-Inspired Partitioning and Hierarchical Clustering"
// (2013).
package hsyncnet
