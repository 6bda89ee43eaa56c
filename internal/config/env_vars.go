package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	portEnvVar           = "PORT"
	appNameVar           = "APP_NAME"
	folderEnvVar         = "FOLDER"
	backendURLVar        = "BACKEND_URL"
	refreshKeyVar        = "REFRESH_STORAGE_KEY"
	cartKeyVar           = "CART_STORAGE_KEY"
	refreshTimeoutVar    = "REFRESH_TIMEOUT_SECONDS"
	defaultRefreshKey    = "broq_refresh_token"
	defaultCartKey       = "broq_cart"
	defaultRefreshTimeout = 15
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}
var _ BackendConfig = EnvVars{}
var _ StorageConfig = EnvVars{}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, "3000")
	if port != "" && port[0] != ':' {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Broq Storefront")
}

func (EnvVars) GetDataFolder() string {
	return GetEnv(folderEnvVar, "./data")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

// GetBackendURL returns the base URL of the broq REST backend. Defaults to the
// backend's common local development port so things work without extra config.
func (EnvVars) GetBackendURL() string {
	return GetEnv(backendURLVar, "http://localhost:8080")
}

// GetRefreshStorageKey returns the durable-storage key under which the raw
// refresh credential is mirrored.
func (EnvVars) GetRefreshStorageKey() string {
	return GetEnv(refreshKeyVar, defaultRefreshKey)
}

// GetCartStorageKey returns the durable-storage key for the best-effort
// shopping cart mirror. Kept separate from the auth credential key.
func (EnvVars) GetCartStorageKey() string {
	return GetEnv(cartKeyVar, defaultCartKey)
}

// GetRefreshTimeoutSeconds bounds how long a coordinated token refresh (and
// everything queued behind it) may wait on the backend.
func (EnvVars) GetRefreshTimeoutSeconds() int {
	v, err := strconv.Atoi(GetEnv(refreshTimeoutVar, ""))
	if err != nil || v <= 0 {
		return defaultRefreshTimeout
	}
	return v
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
