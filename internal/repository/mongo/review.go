package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/utafrali/CampgroundsGo/internal/domain"
)

// ReviewCollection is the name of the review collection.
const ReviewCollection = "reviews"

// ReviewRepository implements review persistence on MongoDB.
type ReviewRepository struct {
	coll *mongo.Collection
}

// NewReviewRepository creates a MongoDB-backed review repository.
func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{coll: db.Collection(ReviewCollection)}
}

// Create inserts a new review document.
func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	review.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// GetByIDs returns the review documents for the given ids, preserving the
// order of ids. Ids that resolve nothing are skipped.
func (r *ReviewRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Review, error) {
	if len(ids) == 0 {
		return []domain.Review{}, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("find reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []domain.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}

	// $in gives no ordering guarantee; restore the list order the parent
	// document declares.
	byID := make(map[primitive.ObjectID]domain.Review, len(reviews))
	for _, rv := range reviews {
		byID[rv.ID] = rv
	}

	ordered := make([]domain.Review, 0, len(reviews))
	for _, id := range ids {
		if rv, ok := byID[id]; ok {
			ordered = append(ordered, rv)
		}
	}

	return ordered, nil
}

// Delete removes a review document. Deleting a missing id is a no-op.
func (r *ReviewRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}

// DeleteByIDs removes every review document whose id is in ids.
func (r *ReviewRepository) DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	res, err := r.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, fmt.Errorf("delete reviews: %w", err)
	}
	return res.DeletedCount, nil
}
