package storage

// SchemaVersion is the current database schema version.
const SchemaVersion = 1

// Schema contains the SQL statements to create the audit database schema.
const Schema = `
-- Validation audit records
CREATE TABLE IF NOT EXISTS audit (
    id TEXT PRIMARY KEY,
    request_id TEXT,

    recorded_at TIMESTAMP NOT NULL,

    -- Request
    mode TEXT NOT NULL,
    source TEXT NOT NULL,
    params TEXT NOT NULL,

    -- Outcome
    outcome TEXT NOT NULL,
    error_count INTEGER NOT NULL,
    warning_count INTEGER NOT NULL,
    suggestion_count INTEGER NOT NULL,
    duration_us INTEGER NOT NULL
);

-- Schema version table
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY,
    applied_at TIMESTAMP NOT NULL
);

-- Indexes for common queries
CREATE INDEX IF NOT EXISTS idx_audit_recorded_at ON audit(recorded_at);
CREATE INDEX IF NOT EXISTS idx_audit_mode ON audit(mode);
CREATE INDEX IF NOT EXISTS idx_audit_outcome ON audit(outcome);
CREATE INDEX IF NOT EXISTS idx_audit_request_id ON audit(request_id);
`

// InsertSchemaVersion inserts the schema version into the schema_version table.
const InsertSchemaVersion = `
INSERT INTO schema_version (version, applied_at)
VALUES (?, datetime('now'))
ON CONFLICT(version) DO NOTHING;
`

// GetSchemaVersion retrieves the current schema version from the database.
const GetSchemaVersion = `
SELECT version FROM schema_version ORDER BY version DESC LIMIT 1;
`
