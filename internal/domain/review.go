package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review represents a review left on a campground. The parent campground
// holds the reference; reviews carry no back-pointer. Ratings run 1 through
// 5 inclusive, enforced at input validation.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Body      string             `bson:"body" json:"body"`
	Rating    int                `bson:"rating" json:"rating"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
