// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//
// AppConfig is where everything specific to HarvaleHub lives: which
// applicant store backend to run, where photos go, and the session gate
// for the admin dashboard.
type AppConfig struct {
	// Applicant record storage: "mongo" or "file"
	StoreBackend string

	// MongoDB connection configuration (used when StoreBackend is "mongo")
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// File backend configuration (used when StoreBackend is "file")
	DataDir string // Directory for applicants.json and admin.json

	// Photo storage configuration
	StorageType string // Photo backend: "local" or "s3"
	UploadsDir  string // Local directory for uploaded photos
	UploadsURL  string // URL prefix for serving local photos (e.g., "/uploads")

	// S3 configuration (only used if StorageType is "s3")
	StorageS3Region string // AWS region
	StorageS3Bucket string // S3 bucket name
	StorageS3Prefix string // Key prefix (e.g., "uploads/")

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionDomain string // Cookie domain (blank means current host)

	// Read cache over the applicant list (0 disables caching)
	CacheTTL time.Duration
}
