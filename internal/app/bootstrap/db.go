// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	applicantstore "github.com/harvalefoods/harvalehub/internal/app/store/applicants"
	credentialstore "github.com/harvalefoods/harvalehub/internal/app/store/credentials"
	"github.com/harvalefoods/harvalehub/internal/app/system/photostore"
	"github.com/harvalefoods/harvalehub/internal/app/system/timeouts"
	"github.com/harvalefoods/harvalehub/internal/app/system/validators"
)

// ConnectDB builds the storage backends selected by AppConfig.
//
// Photo storage comes up first. The local store always exists because
// the /uploads endpoint serves from it; when storage_type is "s3" the
// S3 store handles new uploads and a failure to reach AWS falls back
// to local with a warning rather than refusing to start.
//
// Applicant and credential records then come from MongoDB or from JSON
// files under data_dir, and the applicant store gets wrapped in the
// read cache when cache_ttl is non-zero.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	var deps DBDeps

	local, err := photostore.NewLocal(appCfg.UploadsDir, appCfg.UploadsURL, logger)
	if err != nil {
		return deps, fmt.Errorf("local photo store: %w", err)
	}
	deps.LocalPhotos = local
	deps.Photos = local

	if appCfg.StorageType == "s3" {
		s3store, err := photostore.NewS3(ctx, appCfg.StorageS3Region, appCfg.StorageS3Bucket, appCfg.StorageS3Prefix, logger)
		if err != nil {
			logger.Warn("S3 photo store unavailable, falling back to local storage",
				zap.String("bucket", appCfg.StorageS3Bucket),
				zap.Error(err))
		} else {
			deps.Photos = s3store
			logger.Info("photo storage using S3",
				zap.String("bucket", appCfg.StorageS3Bucket),
				zap.String("region", appCfg.StorageS3Region))
		}
	}

	switch appCfg.StoreBackend {
	case "mongo":
		clientOpts := options.Client().
			ApplyURI(appCfg.MongoURI).
			SetMaxPoolSize(appCfg.MongoMaxPoolSize).
			SetMinPoolSize(appCfg.MongoMinPoolSize)

		client, err := mongo.Connect(ctx, clientOpts)
		if err != nil {
			return deps, fmt.Errorf("mongo connect: %w", err)
		}

		pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
		defer cancel()
		if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
			return deps, fmt.Errorf("mongo ping: %w", err)
		}

		db := client.Database(appCfg.MongoDatabase)
		deps.MongoClient = client
		deps.MongoDatabase = db
		deps.Applicants = applicantstore.NewMongo(db)
		deps.Credentials = credentialstore.NewMongo(db)
		logger.Info("connected to MongoDB",
			zap.String("database", appCfg.MongoDatabase))

	case "file":
		applicants, err := applicantstore.NewFile(filepath.Join(appCfg.DataDir, "applicants.json"), deps.Photos, logger)
		if err != nil {
			return deps, fmt.Errorf("applicant file store: %w", err)
		}
		credentials, err := credentialstore.NewFile(filepath.Join(appCfg.DataDir, "admin.json"))
		if err != nil {
			return deps, fmt.Errorf("credential file store: %w", err)
		}
		deps.Applicants = applicants
		deps.Credentials = credentials
		logger.Info("using file-backed stores",
			zap.String("data_dir", appCfg.DataDir))

	default:
		return deps, fmt.Errorf("unknown store_backend %q", appCfg.StoreBackend)
	}

	if appCfg.CacheTTL > 0 {
		deps.Applicants = applicantstore.NewCached(deps.Applicants, appCfg.CacheTTL)
		logger.Info("applicant list cache enabled",
			zap.Duration("ttl", appCfg.CacheTTL))
	}

	return deps, nil
}

// EnsureSchema creates collections, validators, and indexes. The file
// backend has no schema to set up.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoDatabase == nil {
		return nil
	}
	logger.Info("ensuring MongoDB collections and indexes")
	return validators.EnsureAll(ctx, deps.MongoDatabase)
}
