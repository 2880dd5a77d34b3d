package config

import (
	"fmt"

	"github.com/knadh/koanf/v2"
)

// defaults holds the built-in value for every key, by top-level section.
// They sit underneath base.yaml so that a sparse config directory still
// yields a complete, valid Config.
var defaults = map[string]map[string]any{
	"server": {
		"host":          "0.0.0.0",
		"port":          8080,
		"read_timeout":  "5s",
		"write_timeout": "10s",
		"idle_timeout":  "120s",
	},
	"log": {
		"level":  "info",
		"format": "json",
	},
	"client": {
		"base_url":                        "http://localhost:8080",
		"timeout":                         "30s",
		"retry.max_attempts":              3,
		"retry.initial_interval":          "100ms",
		"retry.max_interval":              "10s",
		"retry.multiplier":                2.0,
		"circuit_breaker.max_failures":    5,
		"circuit_breaker.timeout":         "30s",
		"circuit_breaker.half_open_limit": 1,
		"rate_limit.requests_per_second":  0,
		"rate_limit.burst_size":           1,
	},
	"board": {
		"sse_keepalive": "15s",
		"max_watchers":  64,
	},
	"telemetry": {
		"enabled":      false,
		"exporter":     "stdout",
		"endpoint":     "",
		"service_name": "projectboard",
	},
}

func loadDefaults(k *koanf.Koanf) error {
	for section, values := range defaults {
		for key, v := range values {
			path := section + "." + key
			if err := k.Set(path, v); err != nil {
				return fmt.Errorf("setting default %s: %w", path, err)
			}
		}
	}
	return nil
}
