// Package kuramoto implements the base Kuramoto-model oscillatory
// network shared by syncnet and hsyncnet: phase dynamics over a
// topology.Topology, global/local order metrics, static and dynamic
// simulation loops, and ensemble (synchronous-group) extraction.
//
// Each oscillator's phase is integrated as its own scalar ODE: the
// right-hand side reads every neighbor's phase from the pre-step
// snapshot and writes into a fresh buffer, so a full sweep over all
// oscillators commits only after every derivative has been computed
// from the same pre-step state — the double-buffering semantic
// simultaneity simulations require.
package kuramoto
