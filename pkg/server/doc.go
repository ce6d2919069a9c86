// Package server provides the HTTP server for the parameter validation API.
//
// The server wires the validation endpoints, the settings endpoint, the
// health and version probes, and the Prometheus exposition path behind a
// middleware chain of recovery, request IDs, logging, CORS, and a
// per-request timeout:
//
//	handler = Recovery(RequestID(Logging(CORS(Timeout(mux)))))
//
// Start blocks until the context is cancelled, Shutdown is called, or the
// listener fails, then drains in-flight requests within the configured
// shutdown timeout. Signal handling belongs to the caller; the run command
// passes a context from cli.SetupSignalHandler. Readiness checks for the storage backends are registered
// with the embedded health checker; a degraded check turns /ready into 503
// while /health stays 200.
package server
