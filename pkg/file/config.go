package file

// LocalConfig configures LocalStorage from the environment.
type LocalConfig struct {
	// Path of the snapshot file; the extension picks the codec.
	Path string `env:"SESSION_FILE_PATH" envDefault:"data/sessions.json"`
}

// S3Config contains configuration for S3 storage.
type S3Config struct {
	Bucket      string `env:"S3_BUCKET"`
	Region      string `env:"S3_REGION" envDefault:"us-east-1"`
	AccessKeyID string `env:"S3_ACCESS_KEY_ID"`
	SecretKey   string `env:"S3_SECRET_KEY"`

	// Endpoint is optional, for S3-compatible services.
	Endpoint string `env:"S3_ENDPOINT"`
	// ForcePathStyle is needed by S3-compatible services like MinIO.
	ForcePathStyle bool `env:"S3_FORCE_PATH_STYLE" envDefault:"false"`

	// Key is the object key of the snapshot; its extension picks the codec.
	Key string `env:"S3_SESSION_KEY" envDefault:"sessions.json"`
}
