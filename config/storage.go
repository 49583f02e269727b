package config

// StorageConfig contains S3 object storage configuration for job images.
type StorageConfig struct {
	// Endpoint overrides the S3 endpoint (set for MinIO or other
	// S3-compatible stores; leave empty for AWS).
	Endpoint string `env:"ENDPOINT"`

	Region    string `env:"REGION"     envDefault:"eu-west-1"`
	Bucket    string `env:"BUCKET"     envDefault:"job-images"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`

	// PublicBaseURL is the base URL public image links are built from.
	// Defaults to the virtual-hosted S3 URL for Bucket when empty.
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`

	// MaxUploadBytes caps accepted image uploads.
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`
}
