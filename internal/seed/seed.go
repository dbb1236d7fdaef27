package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/utafrali/CampgroundsGo/internal/domain"
	mongorepo "github.com/utafrali/CampgroundsGo/internal/repository/mongo"
)

// maxPrice bounds the generated nightly price; prices land in [0, maxPrice).
const maxPrice = 30

// Generate produces n random campground listings.
func Generate(n int) []domain.Campground {
	now := time.Now().UTC()
	campgrounds := make([]domain.Campground, 0, n)
	for i := 0; i < n; i++ {
		c := cities[rand.IntN(len(cities))]
		campgrounds = append(campgrounds, domain.Campground{
			Title:       fmt.Sprintf("%s %s", descriptors[rand.IntN(len(descriptors))], places[rand.IntN(len(places))]),
			Location:    fmt.Sprintf("%s, %s", c.Name, c.State),
			Price:       float64(rand.IntN(maxPrice*100)) / 100,
			Image:       defaultImage,
			Description: defaultDescription,
			Reviews:     []primitive.ObjectID{},
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return campgrounds
}

// Run wipes both collections and inserts n fresh listings.
func Run(ctx context.Context, db *mongo.Database, n int, logger *slog.Logger) error {
	campgrounds := db.Collection(mongorepo.CampgroundCollection)
	reviews := db.Collection(mongorepo.ReviewCollection)

	if _, err := campgrounds.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("clear campgrounds: %w", err)
	}
	if _, err := reviews.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("clear reviews: %w", err)
	}

	generated := Generate(n)
	docs := make([]any, len(generated))
	for i := range generated {
		docs[i] = generated[i]
	}

	result, err := campgrounds.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("insert campgrounds: %w", err)
	}

	logger.InfoContext(ctx, "database seeded",
		slog.Int("requested", n),
		slog.Int("inserted", len(result.InsertedIDs)),
	)
	return nil
}
