// Package syncnet implements SyncNet, a Kuramoto oscillator network
// used for cluster analysis: one oscillator per input point, coupled
// only within a connectivity radius, synchronized by
// github.com/gopherclust/ccore/kuramoto's dynamic simulation until
// local order crosses a target, then partitioned into clusters by
// phase-ensemble extraction.
//
// Based on T. Miyano, T. Tsutsui, "Data Synchronization as a Method of
// Data Mining" (2007).
package syncnet
