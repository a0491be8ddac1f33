// internal/domain/models/credentials.go
package models

// Bootstrap credentials used until an override is persisted.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// AdminCredentials is the single admin login for the dashboard.
// Exactly one live pair exists system-wide; there is no multi-admin
// concept. Stored as plain strings, matching the deployed behavior
// (a known weakness for anything beyond this low-stakes internal tool).
type AdminCredentials struct {
	Username string `bson:"username" json:"username"`
	Password string `bson:"password" json:"password"`
}
