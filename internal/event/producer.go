package event

import (
	"context"
	"fmt"
	"log/slog"

	pkgkafka "github.com/utafrali/CampgroundsGo/pkg/kafka"
	"github.com/utafrali/CampgroundsGo/pkg/logger"

	"github.com/utafrali/CampgroundsGo/internal/domain"
)

// Kafka topic constants for campground domain events.
const (
	TopicCampgroundCreated = "campgrounds.campground.created"
	TopicCampgroundUpdated = "campgrounds.campground.updated"
	TopicCampgroundDeleted = "campgrounds.campground.deleted"
	TopicReviewCreated     = "campgrounds.review.created"
	TopicReviewDeleted     = "campgrounds.review.deleted"
)

// Aggregate type constants.
const (
	AggregateTypeCampground = "campground"
	AggregateTypeReview     = "review"
)

// Source identifier for events originating from this service.
const Source = "campgrounds"

// CampgroundData is the payload for campground.created and
// campground.updated events.
type CampgroundData struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
}

// CampgroundDeletedData is the payload for a campground.deleted event.
type CampgroundDeletedData struct {
	ID             string `json:"id"`
	ReviewsDeleted int    `json:"reviews_deleted"`
}

// ReviewCreatedData is the payload for a review.created event.
type ReviewCreatedData struct {
	ID           string `json:"id"`
	CampgroundID string `json:"campground_id"`
	Rating       int    `json:"rating"`
}

// ReviewDeletedData is the payload for a review.deleted event.
type ReviewDeletedData struct {
	ID           string `json:"id"`
	CampgroundID string `json:"campground_id"`
}

// Producer publishes campground domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

func campgroundData(c *domain.Campground) CampgroundData {
	return CampgroundData{
		ID:          c.ID.Hex(),
		Title:       c.Title,
		Price:       c.Price,
		Image:       c.Image,
		Location:    c.Location,
		Description: c.Description,
	}
}

// PublishCampgroundCreated publishes a campground.created event.
func (p *Producer) PublishCampgroundCreated(ctx context.Context, c *domain.Campground) error {
	return p.publish(ctx, TopicCampgroundCreated, "campground.created", c.ID.Hex(), AggregateTypeCampground, campgroundData(c))
}

// PublishCampgroundUpdated publishes a campground.updated event.
func (p *Producer) PublishCampgroundUpdated(ctx context.Context, c *domain.Campground) error {
	return p.publish(ctx, TopicCampgroundUpdated, "campground.updated", c.ID.Hex(), AggregateTypeCampground, campgroundData(c))
}

// PublishCampgroundDeleted publishes a campground.deleted event.
func (p *Producer) PublishCampgroundDeleted(ctx context.Context, id string, reviewsDeleted int) error {
	data := CampgroundDeletedData{ID: id, ReviewsDeleted: reviewsDeleted}
	return p.publish(ctx, TopicCampgroundDeleted, "campground.deleted", id, AggregateTypeCampground, data)
}

// PublishReviewCreated publishes a review.created event.
func (p *Producer) PublishReviewCreated(ctx context.Context, review *domain.Review, campgroundID string) error {
	data := ReviewCreatedData{
		ID:           review.ID.Hex(),
		CampgroundID: campgroundID,
		Rating:       review.Rating,
	}
	return p.publish(ctx, TopicReviewCreated, "review.created", review.ID.Hex(), AggregateTypeReview, data)
}

// PublishReviewDeleted publishes a review.deleted event.
func (p *Producer) PublishReviewDeleted(ctx context.Context, reviewID, campgroundID string) error {
	data := ReviewDeletedData{ID: reviewID, CampgroundID: campgroundID}
	return p.publish(ctx, TopicReviewDeleted, "review.deleted", reviewID, AggregateTypeReview, data)
}

func (p *Producer) publish(ctx context.Context, topic, eventType, aggregateID, aggregateType string, data any) error {
	ev, err := pkgkafka.NewEvent(eventType, aggregateID, aggregateType, Source, data)
	if err != nil {
		return fmt.Errorf("build %s event: %w", eventType, err)
	}

	if id := logger.CorrelationIDFromContext(ctx); id != "" {
		ev.WithCorrelationID(id)
	}

	if err := p.kafka.Publish(ctx, topic, ev); err != nil {
		return fmt.Errorf("publish %s event: %w", eventType, err)
	}

	p.logger.DebugContext(ctx, "domain event published",
		slog.String("topic", topic),
		slog.String("aggregate_id", aggregateID),
	)

	return nil
}
