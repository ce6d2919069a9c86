// Package api provides request parsing and response writing for the HTTP
// surface.
//
// Request bodies are size-limited and decoded strictly: a value of the wrong
// JSON type for a typed field fails the decode and is reported as
// INVALID_JSON, while semantic problems in a well-formed body (missing
// params, unknown mode) are VALIDATION_ERROR. Handlers live in the handlers
// subpackage, middleware in the middleware subpackage, and the shared JSON
// envelopes in the types subpackage.
package api
