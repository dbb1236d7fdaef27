package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Campground represents a campground listing. The Reviews field holds
// references to review documents in insertion order; the documents
// themselves live in their own collection.
type Campground struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Price       float64              `bson:"price" json:"price"`
	Image       string               `bson:"image" json:"image"`
	Location    string               `bson:"location" json:"location"`
	Description string               `bson:"description" json:"description"`
	Reviews     []primitive.ObjectID `bson:"reviews" json:"reviews"`
	CreatedAt   time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at" json:"updated_at"`
}

// HasReviews reports whether any review references remain on the listing.
func (c *Campground) HasReviews() bool {
	return len(c.Reviews) > 0
}
