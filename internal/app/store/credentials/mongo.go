// internal/app/store/credentials/mongo.go
package credentialstore

import (
	"context"

	"github.com/harvalefoods/harvalehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// adminDocID is the fixed _id of the singleton credentials document.
const adminDocID = "admin"

// Mongo keeps the credentials as a single document in admin_settings.
type Mongo struct {
	c *mongo.Collection
}

// NewMongo creates a Mongo-backed credentials store.
func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{c: db.Collection("admin_settings")}
}

// Get returns the stored credentials, or the defaults when none have
// been saved yet.
func (s *Mongo) Get(ctx context.Context) (models.AdminCredentials, error) {
	var doc struct {
		Username string `bson:"username"`
		Password string `bson:"password"`
	}
	err := s.c.FindOne(ctx, bson.M{"_id": adminDocID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return defaults(), nil
	}
	if err != nil {
		return models.AdminCredentials{}, err
	}
	return models.AdminCredentials{Username: doc.Username, Password: doc.Password}, nil
}

// Set replaces the stored credentials, creating the document on first use.
func (s *Mongo) Set(ctx context.Context, creds models.AdminCredentials) error {
	update := bson.M{"$set": bson.M{
		"username": creds.Username,
		"password": creds.Password,
	}}
	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": adminDocID}, update, opts)
	return err
}
