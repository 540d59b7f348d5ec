package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Mode selects how the planner runs.
type Mode string

const (
	// ModeBatch fetches partners once, submits the result and exits.
	ModeBatch Mode = "batch"
	// ModeServe exposes the planner over HTTP.
	ModeServe Mode = "serve"
)

// Config captures process level configuration.
type Config struct {
	Mode        Mode
	Addr        string
	MetricsAddr string

	API    APIConfig
	Input  InputConfig
	Kafka  KafkaConfig
	Logger LoggerConfig
}

// APIConfig points at the remote dataset and result endpoints.
type APIConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// InputConfig switches the batch run to local files and stdout.
type InputConfig struct {
	File   string
	DryRun bool
}

// KafkaConfig enables run events when Brokers is non-empty.
type KafkaConfig struct {
	Brokers         []string
	Topic           string
	ClientID        string
	Linger          time.Duration
	DeliveryTimeout time.Duration
}

// Enabled reports whether a broker list was configured.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type LoggerConfig struct {
	Level  string
	Format string
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() (Config, error) {
	return fromLookup(os.Getenv)
}

func fromLookup(getenv func(string) string) (Config, error) {
	cfg := Config{
		Mode:        Mode(valueOr(getenv("PLANNER_MODE"), string(ModeBatch))),
		Addr:        valueOr(getenv("PLANNER_ADDR"), ":8080"),
		MetricsAddr: valueOr(getenv("PLANNER_METRICS_ADDR"), ":9090"),
		API: APIConfig{
			BaseURL: getenv("BASE_URL"),
			APIKey:  getenv("API_KEY"),
			Timeout: 10 * time.Second,
		},
		Input: InputConfig{
			File:   getenv("PLANNER_INPUT_FILE"),
			DryRun: getenv("PLANNER_DRY_RUN") == "true",
		},
		Kafka: KafkaConfig{
			Brokers:         splitList(getenv("KAFKA_BROKERS")),
			Topic:           valueOr(getenv("KAFKA_AUDIT_TOPIC"), "partnerplan.runs"),
			ClientID:        valueOr(getenv("KAFKA_CLIENT_ID"), "partnerplan"),
			DeliveryTimeout: 10 * time.Second,
		},
		Logger: LoggerConfig{
			Level:  valueOr(getenv("LOG_LEVEL"), "info"),
			Format: valueOr(getenv("LOG_FORMAT"), "json"),
		},
	}
	if getenv("PLANNER_METRICS_ADDR") == "-" {
		cfg.MetricsAddr = ""
	}

	durations := []struct {
		name  string
		dst   *time.Duration
		allow func(time.Duration) bool
	}{
		{"PLANNER_HTTP_TIMEOUT", &cfg.API.Timeout, positive},
		{"KAFKA_LINGER", &cfg.Kafka.Linger, nonNegative},
		{"KAFKA_DELIVERY_TIMEOUT", &cfg.Kafka.DeliveryTimeout, positive},
	}
	for _, d := range durations {
		raw := getenv(d.name)
		if raw == "" {
			continue
		}
		v, err := time.ParseDuration(raw)
		if err != nil || !d.allow(v) {
			return Config{}, fmt.Errorf("%s: invalid duration %q", d.name, raw)
		}
		*d.dst = v
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Mode {
	case ModeBatch:
		if c.Input.File == "" || !c.Input.DryRun {
			if c.API.BaseURL == "" {
				return fmt.Errorf("BASE_URL is required unless PLANNER_INPUT_FILE and PLANNER_DRY_RUN are both set")
			}
			if c.API.APIKey == "" {
				return fmt.Errorf("API_KEY is required when BASE_URL is used")
			}
		}
	case ModeServe:
	default:
		return fmt.Errorf("PLANNER_MODE: unknown mode %q", c.Mode)
	}
	return nil
}

func positive(d time.Duration) bool    { return d > 0 }
func nonNegative(d time.Duration) bool { return d >= 0 }

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
