package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestFromLookup(t *testing.T) {
	t.Run("batch defaults", func(t *testing.T) {
		cfg, err := fromLookup(env(map[string]string{
			"BASE_URL": "https://api.example.com/v1/",
			"API_KEY":  "key",
		}))
		require.NoError(t, err)

		assert.Equal(t, ModeBatch, cfg.Mode)
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, ":9090", cfg.MetricsAddr)
		assert.Equal(t, 10*time.Second, cfg.API.Timeout)
		assert.False(t, cfg.Kafka.Enabled())
		assert.Equal(t, "partnerplan.runs", cfg.Kafka.Topic)
		assert.Equal(t, "partnerplan", cfg.Kafka.ClientID)
		assert.Zero(t, cfg.Kafka.Linger)
		assert.Equal(t, 10*time.Second, cfg.Kafka.DeliveryTimeout)
		assert.Equal(t, "info", cfg.Logger.Level)
		assert.Equal(t, "json", cfg.Logger.Format)
	})

	t.Run("overrides", func(t *testing.T) {
		cfg, err := fromLookup(env(map[string]string{
			"PLANNER_MODE":           "serve",
			"PLANNER_ADDR":           ":7000",
			"PLANNER_METRICS_ADDR":   "-",
			"PLANNER_HTTP_TIMEOUT":   "3s",
			"KAFKA_BROKERS":          " broker-1:9092, ,broker-2:9092",
			"KAFKA_AUDIT_TOPIC":      "runs",
			"KAFKA_CLIENT_ID":        "planner-eu",
			"KAFKA_LINGER":           "20ms",
			"KAFKA_DELIVERY_TIMEOUT": "4s",
			"LOG_LEVEL":              "debug",
			"LOG_FORMAT":             "text",
		}))
		require.NoError(t, err)

		assert.Equal(t, ModeServe, cfg.Mode)
		assert.Equal(t, ":7000", cfg.Addr)
		assert.Empty(t, cfg.MetricsAddr)
		assert.Equal(t, 3*time.Second, cfg.API.Timeout)
		assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.Kafka.Brokers)
		assert.Equal(t, "runs", cfg.Kafka.Topic)
		assert.Equal(t, "planner-eu", cfg.Kafka.ClientID)
		assert.Equal(t, 20*time.Millisecond, cfg.Kafka.Linger)
		assert.Equal(t, 4*time.Second, cfg.Kafka.DeliveryTimeout)
		assert.Equal(t, "debug", cfg.Logger.Level)
	})

	t.Run("offline batch needs no remote API", func(t *testing.T) {
		cfg, err := fromLookup(env(map[string]string{
			"PLANNER_INPUT_FILE": "partners.yaml",
			"PLANNER_DRY_RUN":    "true",
		}))
		require.NoError(t, err)
		assert.Equal(t, "partners.yaml", cfg.Input.File)
		assert.True(t, cfg.Input.DryRun)
	})

	t.Run("batch without BASE_URL is rejected", func(t *testing.T) {
		_, err := fromLookup(env(map[string]string{"API_KEY": "key"}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "BASE_URL")
	})

	t.Run("batch without API_KEY is rejected", func(t *testing.T) {
		_, err := fromLookup(env(map[string]string{"BASE_URL": "https://api.example.com/"}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API_KEY")
	})

	t.Run("bad timeout is rejected", func(t *testing.T) {
		_, err := fromLookup(env(map[string]string{"PLANNER_MODE": "serve", "PLANNER_HTTP_TIMEOUT": "soon"}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PLANNER_HTTP_TIMEOUT")
	})

	t.Run("bad kafka durations are rejected", func(t *testing.T) {
		_, err := fromLookup(env(map[string]string{"PLANNER_MODE": "serve", "KAFKA_DELIVERY_TIMEOUT": "0s"}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "KAFKA_DELIVERY_TIMEOUT")

		_, err = fromLookup(env(map[string]string{"PLANNER_MODE": "serve", "KAFKA_LINGER": "-1s"}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "KAFKA_LINGER")
	})

	t.Run("unknown mode is rejected", func(t *testing.T) {
		_, err := fromLookup(env(map[string]string{"PLANNER_MODE": "daemon"}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PLANNER_MODE")
	})
}
