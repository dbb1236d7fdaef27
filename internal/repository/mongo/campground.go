package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/utafrali/CampgroundsGo/pkg/errors"

	"github.com/utafrali/CampgroundsGo/internal/domain"
	"github.com/utafrali/CampgroundsGo/internal/repository"
)

// CampgroundCollection is the name of the campground collection.
const CampgroundCollection = "campgrounds"

// CampgroundRepository implements campground persistence on MongoDB.
type CampgroundRepository struct {
	coll *mongo.Collection
}

// NewCampgroundRepository creates a MongoDB-backed campground repository.
func NewCampgroundRepository(db *mongo.Database) *CampgroundRepository {
	return &CampgroundRepository{coll: db.Collection(CampgroundCollection)}
}

// List returns all campgrounds in natural insertion order.
func (r *CampgroundRepository) List(ctx context.Context) ([]domain.Campground, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find campgrounds: %w", err)
	}
	defer cursor.Close(ctx)

	var campgrounds []domain.Campground
	if err := cursor.All(ctx, &campgrounds); err != nil {
		return nil, fmt.Errorf("decode campgrounds: %w", err)
	}

	if campgrounds == nil {
		campgrounds = []domain.Campground{}
	}

	return campgrounds, nil
}

// Create inserts a new campground document.
func (r *CampgroundRepository) Create(ctx context.Context, campground *domain.Campground) error {
	if campground.ID.IsZero() {
		campground.ID = primitive.NewObjectID()
	}
	if campground.Reviews == nil {
		campground.Reviews = []primitive.ObjectID{}
	}
	now := time.Now().UTC()
	campground.CreatedAt = now
	campground.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, campground); err != nil {
		return fmt.Errorf("insert campground: %w", err)
	}
	return nil
}

// GetByID retrieves a campground by its identifier.
func (r *CampgroundRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Campground, error) {
	var campground domain.Campground
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&campground)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFound("campground")
	}
	if err != nil {
		return nil, fmt.Errorf("find campground: %w", err)
	}
	return &campground, nil
}

// Update merges the provided fields into the document and returns the
// updated state. With no fields set there is nothing to write, so the
// current document is returned as-is.
func (r *CampgroundRepository) Update(ctx context.Context, id primitive.ObjectID, fields repository.UpdateCampgroundFields) (*domain.Campground, error) {
	if fields.Empty() {
		return r.GetByID(ctx, id)
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if fields.Title != nil {
		set["title"] = *fields.Title
	}
	if fields.Price != nil {
		set["price"] = *fields.Price
	}
	if fields.Image != nil {
		set["image"] = *fields.Image
	}
	if fields.Location != nil {
		set["location"] = *fields.Location
	}
	if fields.Description != nil {
		set["description"] = *fields.Description
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var campground domain.Campground
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&campground)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFound("campground")
	}
	if err != nil {
		return nil, fmt.Errorf("update campground: %w", err)
	}
	return &campground, nil
}

// Delete removes the document and returns its final state so the caller can
// cascade to dependent reviews. Returns nil without error when nothing
// matched.
func (r *CampgroundRepository) Delete(ctx context.Context, id primitive.ObjectID) (*domain.Campground, error) {
	var campground domain.Campground
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&campground)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete campground: %w", err)
	}
	return &campground, nil
}

// PushReview appends a review reference to the campground's review list.
func (r *CampgroundRepository) PushReview(ctx context.Context, campgroundID, reviewID primitive.ObjectID) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": campgroundID},
		bson.M{
			"$push": bson.M{"reviews": reviewID},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return fmt.Errorf("push review reference: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.NotFound("campground")
	}
	return nil
}

// PullReview removes a review reference from the campground's review list.
// Pulling a reference that is not present is a no-op.
func (r *CampgroundRepository) PullReview(ctx context.Context, campgroundID, reviewID primitive.ObjectID) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": campgroundID},
		bson.M{
			"$pull": bson.M{"reviews": reviewID},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return fmt.Errorf("pull review reference: %w", err)
	}
	return nil
}
