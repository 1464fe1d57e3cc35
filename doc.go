// Package ccore is a library of spatial clustering and oscillatory
// neural network algorithms over point datasets in Go.
//
// 🚀 What is ccore?
//
//	A mostly-dependency-free toolkit (each algorithm instance is
//	single-threaded; use separate instances for concurrent work) that
//	brings together:
//
//	  • Core primitives: points, datasets, metrics, a kd-tree index
//	  • An ODE integration core (RK4, RKF45) shared by every oscillator
//	  • Kuramoto-based oscillatory networks: sync, syncnet, hsyncnet
//	  • Pulse-coupled (PCNN) and relaxation (LEGION) oscillator networks
//	  • Partitional clustering: k-means, k-medians, k-medoids, x-means
//	  • Hierarchical clustering: agglomerative, hierarchical, ROCK, CURE
//	  • Density-based clustering: DBSCAN
//
// ✨ Why choose ccore?
//
//   - Consistent API    — every algorithm takes a point.Dataset and an
//     Options struct, and exposes Process() returning cluster indices
//   - Pluggable metrics — Euclidean, Manhattan, Chebyshev, Minkowski,
//     and dynamic time warping (dtw.AsMetric) all satisfy point.Metric
//   - Rock-solid        — validated inputs, sentinel errors checked
//     via errors.Is, no silent failure modes
//   - Mostly pure Go    — the oscillatory networks share one ODE core
//     instead of each hand-rolling its own integrator
//
// Under the hood, everything is organized by concern, one package per
// algorithm family:
//
//	point/        — Point, Dataset, Metric (Euclidean/Manhattan/...)
//	kdtree/       — k-d tree nearest-neighbor/range index
//	ode/          — RK4 and adaptive RKF45 integrators
//	topology/     — oscillator adjacency (all-to-all, grid, dynamic)
//	kuramoto/     — phase-coupled oscillator network
//	syncnet/      — Kuramoto-based synchronization clustering
//	hsyncnet/     — hierarchical syncnet via growing coupling radius
//	pcnn/         — pulse-coupled neural network, ODE-reformulated
//	legion/       — Terman-Wang relaxation oscillator network
//	cure/         — Clustering Using REpresentatives
//	dbscan/       — density-based clustering with noise
//	kmeans/       — Lloyd's algorithm
//	kmedians/     — k-means variant minimizing L1 distance
//	kmedoids/     — PAM-style clustering with dataset-member medoids
//	agglomerative/ — bottom-up merge clustering, four linkage criteria
//	hierarchical/ — agglomerative specialized to centroid linkage
//	rock/         — link-based clustering for categorical data
//	xmeans/       — k-means with automatic k via BIC/MNDL
//	dtw/          — dynamic time warping, also usable as a point.Metric
//	internal/rng/ — shared seeded random source
package ccore
