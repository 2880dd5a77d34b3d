// Package middleware holds the inbound HTTP pipeline. The router installs it
// in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → handler
//
// Timeout is attached per route group so that the /events streams, which
// stay open for as long as a browser watches a list, are never cut off.
package middleware
