package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// CatalogFile points at an optional YAML catalog; empty uses the built-in data set.
	CatalogFile string

	// Report session timing.
	SubmitLatency   time.Duration
	ResetDelay      time.Duration
	DispatchTimeout time.Duration

	// Session store bounds.
	SessionIdleTimeout time.Duration
	MaxSessions        int

	// Kafka dispatch configuration. When disabled, reports go to the simulated dispatcher.
	DispatchEnabled    bool
	KafkaBrokers       []string
	KafkaDispatchTopic string
	DispatchETAMinutes int

	// Mapbox geocoding configuration.
	MapboxToken     string
	MapboxEnabled   bool
	MapboxTimeout   time.Duration
	MapboxCacheSize int

	// Device coordinates used to label reports. Zero means unknown.
	DeviceLat float64
	DeviceLon float64
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	submitLatency, err := parseDuration("SUBMIT_LATENCY", "1500ms", true)
	if err != nil {
		return nil, err
	}
	resetDelay, err := parseDuration("RESET_DELAY", "3s", false)
	if err != nil {
		return nil, err
	}
	dispatchTimeout, err := parseDuration("DISPATCH_TIMEOUT", "10s", false)
	if err != nil {
		return nil, err
	}
	idleTimeout, err := parseDuration("SESSION_IDLE_TIMEOUT", "30m", false)
	if err != nil {
		return nil, err
	}
	mapboxTimeout, err := parseDuration("MAPBOX_TIMEOUT", "5s", false)
	if err != nil {
		return nil, err
	}

	eta, err := strconv.Atoi(sharedcfg.EnvOrDefault("DISPATCH_ETA_MINUTES", "15"))
	if err != nil || eta <= 0 {
		return nil, errors.New("invalid DISPATCH_ETA_MINUTES")
	}

	maxSessions, err := strconv.Atoi(sharedcfg.EnvOrDefault("MAX_SESSIONS", "10000"))
	if err != nil || maxSessions <= 0 {
		return nil, errors.New("invalid MAX_SESSIONS")
	}

	lat, err := parseCoordinate("DEVICE_LAT", 90)
	if err != nil {
		return nil, err
	}
	lon, err := parseCoordinate("DEVICE_LON", 180)
	if err != nil {
		return nil, err
	}

	mapboxToken := os.Getenv("MAPBOX_TOKEN")
	mapboxEnabled := mapboxToken != ""
	if v := os.Getenv("MAPBOX_ENABLED"); v != "" {
		mapboxEnabled = v == "true"
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		CatalogFile:     os.Getenv("CATALOG_FILE"),

		SubmitLatency:   submitLatency,
		ResetDelay:      resetDelay,
		DispatchTimeout: dispatchTimeout,

		SessionIdleTimeout: idleTimeout,
		MaxSessions:        maxSessions,

		DispatchEnabled:    os.Getenv("DISPATCH_ENABLED") == "true",
		KafkaBrokers:       sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaDispatchTopic: sharedcfg.EnvOrDefault("KAFKA_DISPATCH_TOPIC", "heat-emergency-reports"),
		DispatchETAMinutes: eta,

		MapboxToken:     mapboxToken,
		MapboxEnabled:   mapboxEnabled,
		MapboxTimeout:   mapboxTimeout,
		MapboxCacheSize: parseMapboxCacheSize(),

		DeviceLat: lat,
		DeviceLon: lon,
	}

	if cfg.DispatchEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_BROKERS is required when DISPATCH_ENABLED is true")
		}
		if cfg.KafkaDispatchTopic == "" {
			return nil, errors.New("KAFKA_DISPATCH_TOPIC is required when DISPATCH_ENABLED is true")
		}
	}
	if cfg.MapboxEnabled && cfg.MapboxToken == "" {
		return nil, errors.New("MAPBOX_ENABLED is true but MAPBOX_TOKEN is not set")
	}

	return cfg, nil
}

// parseDuration reads a positive duration. allowZero permits "0" for
// settings where zero means immediate.
func parseDuration(key, def string, allowZero bool) (time.Duration, error) {
	d, err := time.ParseDuration(sharedcfg.EnvOrDefault(key, def))
	if err != nil || d < 0 || (d == 0 && !allowZero) {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parseCoordinate(key string, limit float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < -limit || v > limit {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return v, nil
}

func parseMapboxCacheSize() int {
	if s := os.Getenv("MAPBOX_CACHE_SIZE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return 1000
}
