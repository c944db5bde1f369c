package config

import (
	"strconv"
	"time"
)

const (
	apiBaseURLVar     = "API_BASE_URL"
	requestTimeoutVar = "REQUEST_TIMEOUT_SECONDS"
)

type Backend struct{}

var _ BackendConfig = Backend{}

// GetAPIBaseURL returns the base URL of the Smart Condominium REST backend,
// including the /api prefix (e.g. "http://127.0.0.1:8000/api")
func (Backend) GetAPIBaseURL() string {
	return GetEnv(apiBaseURLVar, "http://127.0.0.1:8000/api")
}

func (Backend) GetRequestTimeout() time.Duration {
	seconds, err := strconv.Atoi(GetEnv(requestTimeoutVar, "30"))
	if err != nil || seconds <= 0 {
		seconds = 30
	}
	return time.Duration(seconds) * time.Second
}
