package config

import (
	"errors"
	"os"
	"strings"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Reference data directory. Empty means the tables bundled into the
	// binary.
	DataDir string

	// Remote feed endpoints.
	SightingFeedBaseURL string
	CrewFeedURL         string
	FeedTimeout         time.Duration

	// Optional intent-outcome analytics topic.
	KafkaBrokers       []string
	KafkaEventsTopic   string
	KafkaEventsEnabled bool
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	feedTimeout, err := parseDuration("FEED_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		DataDir:         os.Getenv("DATA_DIR"),

		SightingFeedBaseURL: envOrDefault("SIGHTING_FEED_BASE_URL", "https://spotthestation.nasa.gov/sightings/xml_files"),
		CrewFeedURL:         envOrDefault("CREW_FEED_URL", "https://spotthestation.nasa.gov/iss-crew-info.xml"),
		FeedTimeout:         feedTimeout,

		KafkaBrokers:       parseBrokers(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaEventsTopic:   envOrDefault("KAFKA_EVENTS_TOPIC", "skill-intent-events"),
		KafkaEventsEnabled: envOrDefault("KAFKA_EVENTS_ENABLED", "false") == "true",
	}

	if cfg.SightingFeedBaseURL == "" {
		return nil, errors.New("SIGHTING_FEED_BASE_URL is required")
	}
	if cfg.CrewFeedURL == "" {
		return nil, errors.New("CREW_FEED_URL is required")
	}
	if cfg.KafkaEventsEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_EVENTS_ENABLED is true but KAFKA_BROKERS is not set")
	}
	if cfg.KafkaEventsEnabled && cfg.KafkaEventsTopic == "" {
		return nil, errors.New("KAFKA_EVENTS_ENABLED is true but KAFKA_EVENTS_TOPIC is not set")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return d, nil
}

func parseBrokers(s string) []string {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
