package config

// defaults is the bottom configuration layer. Every key a profile may set
// has an entry here so env-only deployments still validate.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             8080,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10s",
		"server.idle_timeout":     "120s",
		"server.request_timeout":  "5s",
		"server.shutdown_timeout": "15s",

		"log.level":  "info",
		"log.format": "json",

		"clock.fixed_now": "",

		"batch.max_items": 100,
		"batch.workers":   8,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "agecalc",
	}
}
