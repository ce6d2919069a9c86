// Package handlers implements the HTTP handlers for the validation API.
//
// Endpoints:
//
//	POST /api/clusters/validate      full validation pass
//	GET  /api/clusters/validate      capability description
//	POST /api/clusters/dependencies  dependency analysis only
//	GET  /api/clusters/schema        field descriptors per tier
//	GET  /api/clusters/defaults      default-filled parameter set
//	GET  /api/settings               persisted editor preferences
//	PUT  /api/settings               replace editor preferences
//
// Parameter execution is out of scope: /api/clusters/execute belongs to the
// clustering runner, not this service.
//
// Handlers share collaborators through Deps; audit recording, metrics, and
// settings persistence are optional and skipped when their field is nil.
package handlers
