package service

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/utafrali/CampgroundsGo/internal/domain"
	"github.com/utafrali/CampgroundsGo/internal/repository"
)

type mockCampgroundRepo struct {
	mock.Mock
}

func (m *mockCampgroundRepo) List(ctx context.Context) ([]domain.Campground, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Campground), args.Error(1)
}

func (m *mockCampgroundRepo) Create(ctx context.Context, campground *domain.Campground) error {
	args := m.Called(ctx, campground)
	return args.Error(0)
}

func (m *mockCampgroundRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Campground, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Campground), args.Error(1)
}

func (m *mockCampgroundRepo) Update(ctx context.Context, id primitive.ObjectID, fields repository.UpdateCampgroundFields) (*domain.Campground, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Campground), args.Error(1)
}

func (m *mockCampgroundRepo) Delete(ctx context.Context, id primitive.ObjectID) (*domain.Campground, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Campground), args.Error(1)
}

func (m *mockCampgroundRepo) PushReview(ctx context.Context, campgroundID, reviewID primitive.ObjectID) error {
	args := m.Called(ctx, campgroundID, reviewID)
	return args.Error(0)
}

func (m *mockCampgroundRepo) PullReview(ctx context.Context, campgroundID, reviewID primitive.ObjectID) error {
	args := m.Called(ctx, campgroundID, reviewID)
	return args.Error(0)
}

type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) Create(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *mockReviewRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Review, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *mockReviewRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockReviewRepo) DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) PublishCampgroundCreated(ctx context.Context, c *domain.Campground) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockEventPublisher) PublishCampgroundUpdated(ctx context.Context, c *domain.Campground) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockEventPublisher) PublishCampgroundDeleted(ctx context.Context, id string, reviewsDeleted int) error {
	args := m.Called(ctx, id, reviewsDeleted)
	return args.Error(0)
}

func (m *mockEventPublisher) PublishReviewCreated(ctx context.Context, review *domain.Review, campgroundID string) error {
	args := m.Called(ctx, review, campgroundID)
	return args.Error(0)
}

func (m *mockEventPublisher) PublishReviewDeleted(ctx context.Context, reviewID, campgroundID string) error {
	args := m.Called(ctx, reviewID, campgroundID)
	return args.Error(0)
}
