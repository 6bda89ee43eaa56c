package config

type Config interface {
	EnvConfig
	BackendConfig
	StorageConfig
}

// EnvConfig holds process-level settings for the storefront server.
type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
}

// BackendConfig holds settings for reaching the broq REST backend.
type BackendConfig interface {
	GetBackendURL() string
	GetRefreshTimeoutSeconds() int
}

// StorageConfig holds settings for the durable local key-value store.
type StorageConfig interface {
	GetDataFolder() string
	GetRefreshStorageKey() string
	GetCartStorageKey() string
}

type mainConfig struct {
	EnvVars
}

func New() Config {
	return mainConfig{}
}
