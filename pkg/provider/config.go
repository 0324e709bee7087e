package provider

// Backend names accepted by SESSION_STORAGE.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
	BackendS3       = "s3"
)

// Config selects and tunes the backend FromConfig connects.
type Config struct {
	Storage  string `env:"SESSION_STORAGE" envDefault:"memory"`
	SafeMode bool   `env:"SESSION_SAFE_MODE" envDefault:"true"`

	// Namespace overrides the snapshot key or row name of the redis, postgres,
	// mongo and sqlite backends so several registries can share one database.
	Namespace string `env:"SESSION_NAMESPACE"`

	// Codec forces the snapshot codec ("json" or "yaml"). File backends fall
	// back to the path extension when it is empty.
	Codec string `env:"SESSION_CODEC"`
}
