// Package metrics provides Prometheus metrics for Callisto.
//
// The Collector owns a private registry and registers validation and HTTP
// metrics under the densityhq_callisto namespace. Record methods are no-ops
// when metrics are disabled, so call sites stay unconditional.
//
// Label cardinality is bounded by construction: mode and outcome come from
// closed sets, field names come from the schema, and HTTP paths are route
// patterns rather than raw URLs.
package metrics
