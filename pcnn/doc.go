// Package pcnn implements a pulse-coupled neural network: a
// topology-connected population of oscillators, each carrying a
// feeding, linking, and dynamic threshold field, that fire a binary
// spike when their internal activity exceeds their own threshold.
//
// The feeding/linking/threshold fields are continuous-time
// reformulations of R. Eckhorn et al.'s 1990 discrete PCNN update
// rule ("Feature Linking via Synchronization among Distributed
// Assemblies: Simulations of Results from Cat Visual Cortex"),
// integrated one step at a time through the shared ODE core instead
// of Eckhorn's original exponential-decay difference equations — the
// two are equivalent in the continuous limit, and this keeps PCNN on
// the same integration substrate as every other oscillatory network
// in this module.
package pcnn
