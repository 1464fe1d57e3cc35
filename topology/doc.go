// Package topology abstracts oscillator adjacency behind neighbors(i)
// and connected(i, j), so the kuramoto/syncnet/hsyncnet/pcnn/legion
// packages need not know whether their network is all-to-all, a grid,
// a linear chain, or a runtime-mutable graph.
//
// Storage is picked per tag: AllToAll needs none (connected is a pure
// function of i != j); grid and list topologies store a per-node
// adjacency list built once at construction; Dynamic topologies store a
// dense bool row per node for N <= 4096, or a compact bitmap beyond that
// — a memory-locality tradeoff, not a correctness one.
package topology
