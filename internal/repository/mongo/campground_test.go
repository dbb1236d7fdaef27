package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	apperrors "github.com/utafrali/CampgroundsGo/pkg/errors"

	"github.com/utafrali/CampgroundsGo/internal/domain"
	"github.com/utafrali/CampgroundsGo/internal/repository"
)

const campgroundNS = "campgrounds." + CampgroundCollection

func campgroundDoc(id primitive.ObjectID, title string, reviews ...primitive.ObjectID) bson.D {
	if reviews == nil {
		reviews = []primitive.ObjectID{}
	}
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "title", Value: title},
		{Key: "price", Value: 25.0},
		{Key: "image", Value: "http://x/i.jpg"},
		{Key: "location", Value: "Denver, CO"},
		{Key: "description", Value: "quiet spot"},
		{Key: "reviews", Value: reviews},
		{Key: "created_at", Value: time.Now().UTC()},
		{Key: "updated_at", Value: time.Now().UTC()},
	}
}

func TestCampgroundRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("GetByID found", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(1, campgroundNS, mtest.FirstBatch, campgroundDoc(id, "Pine Ridge")))

		repo := NewCampgroundRepository(mt.DB)
		got, err := repo.GetByID(context.Background(), id)

		require.NoError(mt.T, err)
		assert.Equal(mt.T, id, got.ID)
		assert.Equal(mt.T, "Pine Ridge", got.Title)
		assert.Empty(mt.T, got.Reviews)
	})

	mt.Run("GetByID missing reports not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, campgroundNS, mtest.FirstBatch))

		repo := NewCampgroundRepository(mt.DB)
		got, err := repo.GetByID(context.Background(), primitive.NewObjectID())

		assert.Nil(mt.T, got)
		assert.ErrorIs(mt.T, err, apperrors.ErrNotFound)
	})

	mt.Run("List returns empty slice when collection is empty", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, campgroundNS, mtest.FirstBatch))

		repo := NewCampgroundRepository(mt.DB)
		got, err := repo.List(context.Background())

		require.NoError(mt.T, err)
		assert.NotNil(mt.T, got)
		assert.Empty(mt.T, got)
	})

	mt.Run("Create inserts", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		repo := NewCampgroundRepository(mt.DB)
		err := repo.Create(context.Background(), &domain.Campground{
			ID:    primitive.NewObjectID(),
			Title: "Pine Ridge",
		})

		assert.NoError(mt.T, err)
	})

	mt.Run("Update missing reports not found", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: nil}})

		repo := NewCampgroundRepository(mt.DB)
		title := "Renamed"
		got, err := repo.Update(context.Background(), primitive.NewObjectID(), repository.UpdateCampgroundFields{Title: &title})

		assert.Nil(mt.T, got)
		assert.ErrorIs(mt.T, err, apperrors.ErrNotFound)
	})

	mt.Run("Update with no fields reads without writing", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, campgroundNS, mtest.FirstBatch, campgroundDoc(id, "Pine Ridge")))

		repo := NewCampgroundRepository(mt.DB)
		got, err := repo.Update(context.Background(), id, repository.UpdateCampgroundFields{})

		require.NoError(mt.T, err)
		assert.Equal(mt.T, "Pine Ridge", got.Title)

		events := mt.GetAllStartedEvents()
		require.Len(mt.T, events, 1)
		assert.Equal(mt.T, "find", events[0].CommandName)
	})

	mt.Run("Delete returns removed document", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		rev := primitive.NewObjectID()
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: campgroundDoc(id, "Pine Ridge", rev)}})

		repo := NewCampgroundRepository(mt.DB)
		got, err := repo.Delete(context.Background(), id)

		require.NoError(mt.T, err)
		require.NotNil(mt.T, got)
		assert.Equal(mt.T, []primitive.ObjectID{rev}, got.Reviews)
	})

	mt.Run("Delete missing is a no-op", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: nil}})

		repo := NewCampgroundRepository(mt.DB)
		got, err := repo.Delete(context.Background(), primitive.NewObjectID())

		assert.NoError(mt.T, err)
		assert.Nil(mt.T, got)
	})

	mt.Run("PushReview on missing campground reports not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		repo := NewCampgroundRepository(mt.DB)
		err := repo.PushReview(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())

		assert.ErrorIs(mt.T, err, apperrors.ErrNotFound)
	})

	mt.Run("PullReview tolerates missing reference", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		repo := NewCampgroundRepository(mt.DB)
		err := repo.PullReview(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())

		assert.NoError(mt.T, err)
	})
}
