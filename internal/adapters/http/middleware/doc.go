// Package middleware holds the inbound HTTP pipeline, registered on the chi
// router in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → [Timeout] → handler
//
// Timeout is installed only when server.request_timeout is positive.
package middleware
