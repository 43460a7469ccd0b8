// Package updategraph provides the minimal update cycle machinery the column
// stores depend on: a logical clock that counts steps, and a queue of terminal
// notifications that run once at the end of a cycle, after all of its work
// and before the clock moves to the next step.
//
// The dependency graph that decides which listeners run inside a cycle is not
// part of this package. The scheduler is the sole authority on step closure;
// stores only react to it.
package updategraph
