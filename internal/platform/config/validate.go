package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Resolution.validate(),
		c.Registry.validate(),
		c.Cache.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.ShutdownTimeout < 0 {
		errs = append(errs, errors.New("server.shutdown_timeout must not be negative"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (r *ResolutionConfig) validate() error {
	var errs []error

	if r.MaxWorkers < 1 {
		errs = append(errs, fmt.Errorf("resolution.max_workers must be >= 1, got %d", r.MaxWorkers))
	}
	if r.MaxBatchSize < 1 {
		errs = append(errs, fmt.Errorf("resolution.max_batch_size must be >= 1, got %d", r.MaxBatchSize))
	}

	return errors.Join(errs...)
}

func (rc *RegistryConfig) validate() error {
	if !rc.Enabled {
		return nil
	}

	var errs []error

	if rc.BaseURL == "" {
		errs = append(errs, errors.New("registry.base_url must not be empty"))
	}
	if rc.Timeout <= 0 {
		errs = append(errs, errors.New("registry.timeout must be positive"))
	}
	if rc.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("registry.retry.max_attempts must be >= 1, got %d", rc.Retry.MaxAttempts))
	}
	if rc.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("registry.retry.multiplier must be positive, got %f", rc.Retry.Multiplier))
	}
	if rc.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("registry.circuit_breaker.max_failures must be >= 1, got %d",
			rc.CircuitBreaker.MaxFailures))
	}
	if rc.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("registry.rate_limit.requests_per_second must not be negative, got %f",
			rc.RateLimit.RequestsPerSecond))
	}
	if rc.RateLimit.RequestsPerSecond > 0 && rc.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("registry.rate_limit.burst_size must be >= 1, got %d", rc.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (c *CacheConfig) validate() error {
	if !c.Enabled {
		return nil
	}

	var errs []error

	if c.Addr == "" {
		errs = append(errs, errors.New("cache.addr must not be empty"))
	}
	if c.TTL <= 0 {
		errs = append(errs, errors.New("cache.ttl must be positive"))
	}
	if c.DB < 0 {
		errs = append(errs, fmt.Errorf("cache.db must not be negative, got %d", c.DB))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
