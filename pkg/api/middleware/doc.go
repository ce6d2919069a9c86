// Package middleware provides HTTP middleware for cross-cutting concerns.
//
// Middleware is chained outermost to innermost as
//
//	handler = Recovery(RequestID(Logging(CORS(cfg)(Timeout(d)(handler)))))
//
// so panics are caught last, every log line carries a request ID, and the
// timeout bounds only handler execution.
//
// RequestID honors a client-supplied X-Request-ID header and otherwise
// generates a UUID; the ID is stored in the request context and echoed in
// the response headers. Logging records method, path, status, and latency
// through log/slog. Recovery and Timeout write their error responses in the
// standard envelope from pkg/api/types.
package middleware
