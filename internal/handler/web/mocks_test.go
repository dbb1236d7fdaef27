package web

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/CampgroundsGo/pkg/health"

	"github.com/utafrali/CampgroundsGo/internal/domain"
	"github.com/utafrali/CampgroundsGo/internal/service"
	"github.com/utafrali/CampgroundsGo/internal/view"
)

type mockCampgroundService struct {
	mock.Mock
}

func (m *mockCampgroundService) List(ctx context.Context) ([]domain.Campground, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Campground), args.Error(1)
}

func (m *mockCampgroundService) Create(ctx context.Context, input service.CampgroundInput) (*domain.Campground, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Campground), args.Error(1)
}

func (m *mockCampgroundService) Get(ctx context.Context, rawID string) (*domain.CampgroundDetail, error) {
	args := m.Called(ctx, rawID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CampgroundDetail), args.Error(1)
}

func (m *mockCampgroundService) GetForEdit(ctx context.Context, rawID string) (*domain.Campground, error) {
	args := m.Called(ctx, rawID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Campground), args.Error(1)
}

func (m *mockCampgroundService) Update(ctx context.Context, rawID string, input service.CampgroundUpdate) (*domain.Campground, error) {
	args := m.Called(ctx, rawID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Campground), args.Error(1)
}

func (m *mockCampgroundService) Delete(ctx context.Context, rawID string) error {
	args := m.Called(ctx, rawID)
	return args.Error(0)
}

type mockReviewService struct {
	mock.Mock
}

func (m *mockReviewService) AddReview(ctx context.Context, rawCampgroundID string, input service.ReviewInput) (*domain.Review, error) {
	args := m.Called(ctx, rawCampgroundID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *mockReviewService) RemoveReview(ctx context.Context, rawCampgroundID, rawReviewID string) error {
	args := m.Called(ctx, rawCampgroundID, rawReviewID)
	return args.Error(0)
}

func newTestRouter(t *testing.T) (*mockCampgroundService, *mockReviewService, *testServer) {
	t.Helper()

	views, err := view.NewRenderer()
	require.NoError(t, err)

	campgrounds := new(mockCampgroundService)
	reviews := new(mockReviewService)

	router := NewRouter(RouterConfig{
		ServiceName: "campgrounds",
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Views:       views,
		Campgrounds: campgrounds,
		Reviews:     reviews,
		Health:      health.NewHandler(),
	})

	return campgrounds, reviews, &testServer{router: router}
}
