// Package ode provides the general-purpose ODE integration core shared
// by every oscillatory network in this module (kuramoto, pcnn, legion):
// a fixed-step classical Runge-Kutta 4 integrator and an adaptive
// Runge-Kutta-Fehlberg 4(5) integrator, plus the element-wise state
// algebra both rely on.
//
// Two integrators are exposed deliberately. Kuramoto flows at small
// network sizes are well-behaved and benefit from RK4's predictability;
// dynamic-stop simulations at larger sizes benefit from RKF45's error
// control, which adapts step size instead of paying for a worst-case
// fixed step everywhere.
package ode
