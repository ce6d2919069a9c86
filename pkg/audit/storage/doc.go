// Package storage provides audit.Store backends.
//
// MemoryStore keeps records in process memory for development and tests.
// SQLiteStore persists records to a SQLite database with WAL mode and a
// versioned schema.
package storage
