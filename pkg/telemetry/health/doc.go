// Package health provides liveness and readiness probes for Callisto.
//
// Liveness reports only that the process is running. Readiness runs every
// registered component check concurrently, with a per-check timeout, and
// degrades to 503 when any component reports unhealthy. The server registers
// checks for the audit and settings stores when those are enabled.
package health
