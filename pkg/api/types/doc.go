// Package types defines the JSON envelopes shared by the HTTP API.
//
// Every response is wrapped: successes as {"success": true, "data": ...} and
// failures as {"success": false, "error": {"code", "message"}}. Error codes
// are stable strings clients can switch on; the HTTP status code is derived
// from the error code.
package types
