package service

import (
	"context"
	"errors"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "github.com/utafrali/CampgroundsGo/pkg/errors"
	"github.com/utafrali/CampgroundsGo/pkg/validator"

	"github.com/utafrali/CampgroundsGo/internal/domain"
	"github.com/utafrali/CampgroundsGo/internal/repository"
)

// EventPublisher publishes domain events after a state change. Publish
// failures never fail the originating operation.
type EventPublisher interface {
	PublishCampgroundCreated(ctx context.Context, c *domain.Campground) error
	PublishCampgroundUpdated(ctx context.Context, c *domain.Campground) error
	PublishCampgroundDeleted(ctx context.Context, id string, reviewsDeleted int) error
	PublishReviewCreated(ctx context.Context, review *domain.Review, campgroundID string) error
	PublishReviewDeleted(ctx context.Context, reviewID, campgroundID string) error
}

// CampgroundInput carries the submitted campground fields for creation: all
// fields are required. The form tags double as the field names reported in
// validation messages. Price presence is enforced at the form decoder, since
// a required tag on a float cannot tell a submitted 0 from an absent field.
type CampgroundInput struct {
	Title       string  `form:"title" validate:"required"`
	Price       float64 `form:"price" validate:"gte=0"`
	Image       string  `form:"image" validate:"required"`
	Location    string  `form:"location" validate:"required"`
	Description string  `form:"description" validate:"required"`
}

// CampgroundUpdate carries the fields submitted on an edit: nil means the
// field was not submitted and keeps its stored value. Present fields are
// held to the same constraints creation uses.
type CampgroundUpdate struct {
	Title       *string  `form:"title" validate:"omitnil,required"`
	Price       *float64 `form:"price" validate:"omitnil,gte=0"`
	Image       *string  `form:"image" validate:"omitnil,required"`
	Location    *string  `form:"location" validate:"omitnil,required"`
	Description *string  `form:"description" validate:"omitnil,required"`
}

// Fields converts the update into the repository's merge set.
func (u CampgroundUpdate) Fields() repository.UpdateCampgroundFields {
	return repository.UpdateCampgroundFields{
		Title:       u.Title,
		Price:       u.Price,
		Image:       u.Image,
		Location:    u.Location,
		Description: u.Description,
	}
}

// CampgroundService implements the campground listing operations.
type CampgroundService struct {
	campgrounds repository.CampgroundRepository
	reviews     repository.ReviewRepository
	events      EventPublisher
	logger      *slog.Logger
}

// NewCampgroundService creates a new campground service.
func NewCampgroundService(
	campgrounds repository.CampgroundRepository,
	reviews repository.ReviewRepository,
	events EventPublisher,
	logger *slog.Logger,
) *CampgroundService {
	return &CampgroundService{
		campgrounds: campgrounds,
		reviews:     reviews,
		events:      events,
		logger:      logger,
	}
}

// parseID converts a path segment into an ObjectID. A malformed id resolves
// nothing, so it surfaces as the same not-found the lookup itself would.
func parseID(raw, resource string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, apperrors.NotFound(resource)
	}
	return id, nil
}

// List returns every campground listing.
func (s *CampgroundService) List(ctx context.Context) ([]domain.Campground, error) {
	return s.campgrounds.List(ctx)
}

// Create validates the input and inserts a new listing.
func (s *CampgroundService) Create(ctx context.Context, input CampgroundInput) (*domain.Campground, error) {
	if err := validator.Validate(input); err != nil {
		return nil, apperrors.ValidationFailed(err.Error())
	}

	campground := &domain.Campground{
		Title:       input.Title,
		Price:       input.Price,
		Image:       input.Image,
		Location:    input.Location,
		Description: input.Description,
	}

	if err := s.campgrounds.Create(ctx, campground); err != nil {
		return nil, err
	}

	if err := s.events.PublishCampgroundCreated(ctx, campground); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish campground.created event",
			slog.String("campground_id", campground.ID.Hex()),
			slog.String("error", err.Error()),
		)
	}

	return campground, nil
}

// Get returns a listing with its reviews resolved for display.
func (s *CampgroundService) Get(ctx context.Context, rawID string) (*domain.CampgroundDetail, error) {
	id, err := parseID(rawID, "campground")
	if err != nil {
		return nil, err
	}

	campground, err := s.campgrounds.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &domain.CampgroundDetail{Campground: *campground}
	if campground.HasReviews() {
		reviews, err := s.reviews.GetByIDs(ctx, campground.Reviews)
		if err != nil {
			return nil, err
		}
		detail.ResolvedReviews = reviews
	}

	return detail, nil
}

// GetForEdit returns the bare listing for pre-filling the edit form.
func (s *CampgroundService) GetForEdit(ctx context.Context, rawID string) (*domain.Campground, error) {
	id, err := parseID(rawID, "campground")
	if err != nil {
		return nil, err
	}
	return s.campgrounds.GetByID(ctx, id)
}

// Update validates the submitted fields and merges them into the listing.
// Fields left out of the submission keep their stored values. An unknown id
// reports not-found.
func (s *CampgroundService) Update(ctx context.Context, rawID string, input CampgroundUpdate) (*domain.Campground, error) {
	id, err := parseID(rawID, "campground")
	if err != nil {
		return nil, err
	}

	if err := validator.Validate(input); err != nil {
		return nil, apperrors.ValidationFailed(err.Error())
	}

	campground, err := s.campgrounds.Update(ctx, id, input.Fields())
	if err != nil {
		return nil, err
	}

	if err := s.events.PublishCampgroundUpdated(ctx, campground); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish campground.updated event",
			slog.String("campground_id", campground.ID.Hex()),
			slog.String("error", err.Error()),
		)
	}

	return campground, nil
}

// Delete removes a listing and cascades to its reviews. An unknown or
// malformed id is a no-op so the operation stays idempotent.
func (s *CampgroundService) Delete(ctx context.Context, rawID string) error {
	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return nil
	}

	removed, err := s.campgrounds.Delete(ctx, id)
	if err != nil {
		return err
	}
	if removed == nil {
		return nil
	}

	var reviewsDeleted int64
	if removed.HasReviews() {
		reviewsDeleted, err = s.reviews.DeleteByIDs(ctx, removed.Reviews)
		if err != nil {
			// The listing is already gone; surface the stranded reviews
			// instead of failing the delete.
			s.logger.ErrorContext(ctx, "cascade delete left orphaned reviews",
				slog.String("campground_id", removed.ID.Hex()),
				slog.Int("review_count", len(removed.Reviews)),
				slog.String("error", err.Error()),
			)
		}
	}

	if err := s.events.PublishCampgroundDeleted(ctx, removed.ID.Hex(), int(reviewsDeleted)); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish campground.deleted event",
			slog.String("campground_id", removed.ID.Hex()),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

// IsNotFound reports whether the error is a lookup miss.
func IsNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}
