// Package optim sweeps configuration options over a grid and finds the
// combination that minimizes a run metric.
package optim
