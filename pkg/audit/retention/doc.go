// Package retention enforces audit record retention limits.
//
// The Pruner deletes records by age and by total count; the Scheduler runs
// it on a cron expression so the audit database stays bounded without
// operator intervention.
package retention
