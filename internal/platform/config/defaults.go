package config

const (
	defaultServerPort = 8080

	defaultMaxWorkers   = 8
	defaultMaxBatchSize = 100

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitBurst = 10
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",

		"log.level":  "info",
		"log.format": "json",

		"catalog.paths":            []string{},
		"catalog.include_defaults": true,

		"resolution.max_workers":    defaultMaxWorkers,
		"resolution.max_batch_size": defaultMaxBatchSize,

		"registry.enabled":                         false,
		"registry.base_url":                        "http://localhost:8081",
		"registry.token":                           "",
		"registry.timeout":                         "30s",
		"registry.retry.max_attempts":              defaultRetryMaxAttempts,
		"registry.retry.initial_interval":          "100ms",
		"registry.retry.max_interval":              "10s",
		"registry.retry.multiplier":                defaultRetryMultiplier,
		"registry.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"registry.circuit_breaker.timeout":         "30s",
		"registry.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"registry.rate_limit.requests_per_second":  0,
		"registry.rate_limit.burst_size":           defaultRateLimitBurst,

		"cache.enabled":  false,
		"cache.addr":     "localhost:6379",
		"cache.password": "",
		"cache.db":       0,
		"cache.ttl":      "5m",
		"cache.prefix":   "conventions:",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "api-conventions",
	}
}
