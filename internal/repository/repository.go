package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/utafrali/CampgroundsGo/internal/domain"
)

// UpdateCampgroundFields carries the subset of campground fields to merge
// into an existing document. Nil fields are left untouched.
type UpdateCampgroundFields struct {
	Title       *string
	Price       *float64
	Image       *string
	Location    *string
	Description *string
}

// Empty reports whether no field is set.
func (f UpdateCampgroundFields) Empty() bool {
	return f.Title == nil && f.Price == nil && f.Image == nil &&
		f.Location == nil && f.Description == nil
}

// CampgroundRepository defines the interface for campground persistence.
type CampgroundRepository interface {
	// List returns all campgrounds in natural insertion order.
	List(ctx context.Context) ([]domain.Campground, error)

	// Create inserts a new campground document.
	Create(ctx context.Context, campground *domain.Campground) error

	// GetByID retrieves a campground by its identifier.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Campground, error)

	// Update merges the provided fields into the document and returns the
	// updated state. A missing id reports not-found.
	Update(ctx context.Context, id primitive.ObjectID, fields UpdateCampgroundFields) (*domain.Campground, error)

	// Delete removes the document and returns its final state so the caller
	// can cascade to dependents. Returns nil without error when nothing
	// matched.
	Delete(ctx context.Context, id primitive.ObjectID) (*domain.Campground, error)

	// PushReview appends a review reference to the campground's review list.
	PushReview(ctx context.Context, campgroundID, reviewID primitive.ObjectID) error

	// PullReview removes a review reference from the campground's review
	// list. Removing a reference that is not present is a no-op.
	PullReview(ctx context.Context, campgroundID, reviewID primitive.ObjectID) error
}

// ReviewRepository defines the interface for review persistence.
type ReviewRepository interface {
	// Create inserts a new review document.
	Create(ctx context.Context, review *domain.Review) error

	// GetByIDs returns the review documents for the given ids, in the order
	// the ids were given. Ids that resolve nothing are skipped.
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Review, error)

	// Delete removes a review document. Deleting a missing id is a no-op.
	Delete(ctx context.Context, id primitive.ObjectID) error

	// DeleteByIDs removes every review document whose id is in ids and
	// returns how many were removed.
	DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}
