// Package legion implements a LEGION (Locally Excitatory Globally
// Inhibitory Oscillator Network): a topology-connected population of
// Terman-Wang relaxation oscillators, each carrying an excitatory
// variable, a slow inhibitory recovery variable, and a potential
// field, coupled locally through their topology neighbors and
// globally through one shared inhibitor.
//
// Grounded on D. Terman & D.L. Wang, "Global competition and local
// cooperation in a network of neural oscillators", Physica D, 1995 —
// the paper the source project's own parameter names (eps, alpha,
// gamma, betta, teta_x, teta_z, Wz, Wt, ...) are drawn from. No
// implementation file for this network exists in the available
// source; the right-hand side below is reconstructed from the paper's
// relaxation-oscillator and global-inhibitor equations rather than an
// unseen original trace. Parameters.Alpha and Parameters.I are declared
// but not read: each oscillator's stimulus value takes the place of I,
// and Teta is used only by AllocateSyncEnsembles.
package legion
