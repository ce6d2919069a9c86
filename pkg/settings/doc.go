// Package settings persists editor preferences in a local SQLite database.
//
// Preferences (theme, default editing mode, debounce override) are stored as
// a key-value table so new settings can be added without schema migrations.
// The Store exposes typed Load and Save on top of raw Get and Set, filling
// unset keys from Default().
package settings
