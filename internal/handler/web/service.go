package web

import (
	"context"

	"github.com/utafrali/CampgroundsGo/internal/domain"
	"github.com/utafrali/CampgroundsGo/internal/service"
)

// CampgroundService is the campground operations surface the pages need.
type CampgroundService interface {
	List(ctx context.Context) ([]domain.Campground, error)
	Create(ctx context.Context, input service.CampgroundInput) (*domain.Campground, error)
	Get(ctx context.Context, rawID string) (*domain.CampgroundDetail, error)
	GetForEdit(ctx context.Context, rawID string) (*domain.Campground, error)
	Update(ctx context.Context, rawID string, input service.CampgroundUpdate) (*domain.Campground, error)
	Delete(ctx context.Context, rawID string) error
}

// ReviewService is the review operations surface the pages need.
type ReviewService interface {
	AddReview(ctx context.Context, rawCampgroundID string, input service.ReviewInput) (*domain.Review, error)
	RemoveReview(ctx context.Context, rawCampgroundID, rawReviewID string) error
}
