package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"database": map[string]any{
			"autoMigrate":        false,
			"slowQueryThreshold": "200ms",
		},
		"telemetry": map[string]any{
			"kafka": map[string]any{
				"groupId": "",
			},
		},
		"metrics": map[string]any{
			"namespace": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "DATABASE_AUTOMIGRATE", want: "database.autoMigrate"},
		{envKey: "DATABASE_SLOWQUERYTHRESHOLD", want: "database.slowQueryThreshold"},
		{envKey: "TELEMETRY_KAFKA_GROUPID", want: "telemetry.kafka.groupId"},
		{envKey: "METRICS_NAMESPACE", want: "metrics.namespace"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "override", `
env:
  env: develop
  serviceName: tracker
database:
  autoMigrate: false
  slowQueryThreshold: 200ms
telemetry:
  provider: nats
  kafka:
    brokers: []
    groupId: tracker
metrics:
  enabled: false
`)

	t.Setenv("DATABASE_AUTOMIGRATE", "true")
	t.Setenv("DATABASE_SLOWQUERYTHRESHOLD", "1s")
	t.Setenv("TELEMETRY_PROVIDER", "kafka")
	t.Setenv("TELEMETRY_KAFKA_BROKERS", "kafka-0:9092,kafka-1:9092")
	t.Setenv("METRICS_ENABLED", "true")

	cfg, err := LoadWithEnv[Config]("override", dir)
	require.NoError(t, err)

	assert.Equal(t, "develop", cfg.Env.Env)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, time.Second, cfg.Database.SlowQueryThreshold)
	require.NotNil(t, cfg.Telemetry)
	assert.Equal(t, "kafka", cfg.Telemetry.Provider)
	assert.Equal(t, []string{"kafka-0:9092", "kafka-1:9092"}, cfg.Telemetry.Kafka.Brokers)
	assert.Equal(t, "tracker", cfg.Telemetry.Kafka.GroupID)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("absent", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Telemetry: &TelemetryConfig{Provider: "nats"}}

	applyDefaults(cfg)

	assert.Equal(t, defaultMetricsAddr, cfg.Metrics.Addr)
	assert.Equal(t, defaultMetricsNS, cfg.Metrics.Namespace)
	assert.Equal(t, defaultNATSSubject, cfg.Telemetry.NATS.Subject)
	assert.Equal(t, defaultKafkaTopic, cfg.Telemetry.Kafka.Topic)
	assert.Equal(t, defaultKafkaConsumerID, cfg.Telemetry.Kafka.GroupID)
}

func TestApplyDefaults_WithoutTelemetry(t *testing.T) {
	cfg := &Config{Metrics: MetricsConfig{Addr: ":9100", Namespace: "fleet"}}

	applyDefaults(cfg)

	assert.Nil(t, cfg.Telemetry)
	assert.Equal(t, ":9100", cfg.Metrics.Addr)
	assert.Equal(t, "fleet", cfg.Metrics.Namespace)
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-1")

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-0", replicas[0].Host)
	assert.Equal(t, "5432", replicas[0].Port)
	assert.Equal(t, "reader", replicas[0].UserName)
}
