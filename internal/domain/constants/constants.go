// Package constants holds configuration values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Telemetry transport providers
const (
	TelemetryProviderNATS  = "nats"
	TelemetryProviderKafka = "kafka"
)

// Device identifiers are at most this many characters long.
const MaxDeviceLength = 50
