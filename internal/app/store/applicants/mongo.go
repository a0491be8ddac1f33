// internal/app/store/applicants/mongo.go
package applicantstore

import (
	"context"
	"fmt"
	"time"

	"github.com/harvalefoods/harvalehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo stores applicants in the applicants collection.
type Mongo struct {
	c *mongo.Collection
}

// NewMongo creates a Mongo-backed applicant store.
func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{c: db.Collection("applicants")}
}

// ListAll returns every applicant sorted newest-first.
func (s *Mongo) ListAll(ctx context.Context) ([]models.Applicant, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer cur.Close(ctx)

	applicants := []models.Applicant{}
	if err := cur.All(ctx, &applicants); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return applicants, nil
}

// Create inserts a new applicant, assigning its id and creation time.
func (s *Mongo) Create(ctx context.Context, in models.NewApplicant) (models.Applicant, error) {
	a := models.Applicant{
		ID:             primitive.NewObjectID().Hex(),
		FullName:       in.FullName,
		PhoneNumber:    in.PhoneNumber,
		PassportNumber: in.PassportNumber,
		Gender:         in.Gender,
		Photograph:     in.Photograph,
		Age:            in.Age,
		Status:         in.Status,
		CreatedAt:      time.Now().UTC(),
	}
	if !models.IsValidStatus(a.Status) {
		a.Status = models.StatusPending
	}
	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.Applicant{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return a, nil
}

// UpdateStatus sets the status of one applicant and returns the updated
// record. Unknown statuses are rejected before touching the database.
func (s *Mongo) UpdateStatus(ctx context.Context, id, status string) (models.Applicant, error) {
	if !models.IsValidStatus(status) {
		return models.Applicant{}, ErrInvalidStatus
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var a models.Applicant
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		opts,
	).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return models.Applicant{}, ErrNotFound
	}
	if err != nil {
		return models.Applicant{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return a, nil
}

// Delete removes one applicant and returns the removed record.
func (s *Mongo) Delete(ctx context.Context, id string) (models.Applicant, error) {
	var a models.Applicant
	err := s.c.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return models.Applicant{}, ErrNotFound
	}
	if err != nil {
		return models.Applicant{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return a, nil
}
