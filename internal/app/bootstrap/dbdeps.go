// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"

	applicantstore "github.com/harvalefoods/harvalehub/internal/app/store/applicants"
	credentialstore "github.com/harvalefoods/harvalehub/internal/app/store/credentials"
	"github.com/harvalefoods/harvalehub/internal/app/system/photostore"
)

// DBDeps holds the storage backends for the app, built once in
// ConnectDB according to AppConfig and threaded through the lifecycle
// hooks into BuildHandler.
type DBDeps struct {
	// Mongo handles; nil when running on the file backend.
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// Applicants is the configured record store, wrapped in the read
	// cache when cache_ttl is non-zero.
	Applicants applicantstore.Store

	// Credentials holds the single admin login.
	Credentials credentialstore.Store

	// Photos is the active photo blob store (local or S3). LocalPhotos
	// always exists and backs the /uploads retrieval endpoint.
	Photos      photostore.Store
	LocalPhotos *photostore.Local
}
