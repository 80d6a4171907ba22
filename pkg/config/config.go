package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Password string

func (p Password) MarshalText() ([]byte, error) {
	return []byte("*************"), nil
}

type LogLevel string

const (
	Info  LogLevel = "info"
	Debug LogLevel = "debug"
	Trace LogLevel = "trace"
	None  LogLevel = "none"
)

// FlatPeakClient holds the connection and credential settings shared by
// every resource gateway. Exactly one of PublishableKey/SecretKey is
// needed per call path: Basic-authenticated endpoints use the
// publishable key, Bearer-authenticated endpoints need the secret key.
type FlatPeakClient struct {
	Host           string   `envconfig:"HOST" validate:"required"`
	PublishableKey string   `envconfig:"PUBLISHABLE_KEY"`
	SecretKey      Password `envconfig:"SECRET_KEY"`
	LogLevel       LogLevel `envconfig:"LOG_LEVEL" default:"none"`
}

// FromEnv loads client settings from FLATPEAK_* environment variables.
func FromEnv() (FlatPeakClient, error) {
	var cfg FlatPeakClient
	err := envconfig.Process("flatpeak", &cfg)
	if err != nil {
		return FlatPeakClient{}, err
	}

	return cfg, nil
}
