package service

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "github.com/utafrali/CampgroundsGo/pkg/errors"
	"github.com/utafrali/CampgroundsGo/pkg/validator"

	"github.com/utafrali/CampgroundsGo/internal/domain"
	"github.com/utafrali/CampgroundsGo/internal/repository"
)

// ReviewInput carries the submitted review fields.
type ReviewInput struct {
	Body   string `form:"body" validate:"required"`
	Rating int    `form:"rating" validate:"required,min=1,max=5"`
}

// ReviewService implements review creation and removal on a campground.
type ReviewService struct {
	campgrounds repository.CampgroundRepository
	reviews     repository.ReviewRepository
	events      EventPublisher
	logger      *slog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(
	campgrounds repository.CampgroundRepository,
	reviews repository.ReviewRepository,
	events EventPublisher,
	logger *slog.Logger,
) *ReviewService {
	return &ReviewService{
		campgrounds: campgrounds,
		reviews:     reviews,
		events:      events,
		logger:      logger,
	}
}

// AddReview validates the input, inserts the review document and links it to
// the parent campground.
func (s *ReviewService) AddReview(ctx context.Context, rawCampgroundID string, input ReviewInput) (*domain.Review, error) {
	campgroundID, err := parseID(rawCampgroundID, "campground")
	if err != nil {
		return nil, err
	}

	if err := validator.Validate(input); err != nil {
		return nil, apperrors.ValidationFailed(err.Error())
	}

	review := &domain.Review{
		Body:   input.Body,
		Rating: input.Rating,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	if err := s.campgrounds.PushReview(ctx, campgroundID, review.ID); err != nil {
		// The review document exists but nothing references it.
		s.logger.ErrorContext(ctx, "review inserted but not linked to campground",
			slog.String("review_id", review.ID.Hex()),
			slog.String("campground_id", campgroundID.Hex()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	if err := s.events.PublishReviewCreated(ctx, review, campgroundID.Hex()); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish review.created event",
			slog.String("review_id", review.ID.Hex()),
			slog.String("error", err.Error()),
		)
	}

	return review, nil
}

// RemoveReview unlinks a review from its campground and deletes the review
// document. Both steps tolerate a missing id, so repeating the removal is a
// no-op.
func (s *ReviewService) RemoveReview(ctx context.Context, rawCampgroundID, rawReviewID string) error {
	campgroundID, err := primitive.ObjectIDFromHex(rawCampgroundID)
	if err != nil {
		return nil
	}
	reviewID, err := primitive.ObjectIDFromHex(rawReviewID)
	if err != nil {
		return nil
	}

	if err := s.campgrounds.PullReview(ctx, campgroundID, reviewID); err != nil {
		return err
	}
	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		return err
	}

	if err := s.events.PublishReviewDeleted(ctx, reviewID.Hex(), campgroundID.Hex()); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish review.deleted event",
			slog.String("review_id", reviewID.Hex()),
			slog.String("error", err.Error()),
		)
	}

	return nil
}
