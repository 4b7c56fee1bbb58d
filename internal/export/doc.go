// Package export writes trajectories as CSV or JSON artifacts next to the
// rendered output, and reads CSV artifacts back for re-plotting.
package export
