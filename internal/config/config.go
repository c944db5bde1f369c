package config

import "time"

type Config interface {
	EnvConfig
	BackendConfig
	SessionConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
}

type BackendConfig interface {
	GetAPIBaseURL() string
	GetRequestTimeout() time.Duration
}

type SessionConfig interface {
	GetDataFolder() string
}

type mainConfig struct {
	EnvVars
	Backend
	Session
}

func New() Config {
	return mainConfig{}
}
