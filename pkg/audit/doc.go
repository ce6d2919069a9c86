// Package audit records validation requests for later inspection.
//
// Each validation pass served by the API or CLI can be captured as a Record:
// the submitted parameter snapshot, the editing mode, and the outcome counts.
// Records flow through a Recorder, which assigns UUIDs and writes
// asynchronously so validation latency never waits on storage.
//
// Two Store backends exist: an in-memory store for development and tests,
// and a SQLite store for persistence. Retention is enforced by a Pruner,
// optionally driven by a cron schedule.
package audit
