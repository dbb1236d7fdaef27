package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/CampgroundsGo/internal/view"
)

// ReviewHandler serves the review actions nested under a campground.
type ReviewHandler struct {
	reviews ReviewService
	views   *view.Renderer
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(reviews ReviewService, views *view.Renderer) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, views: views}
}

// Create handles the review form submission and redirects back to the
// campground page.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	campgroundID := chi.URLParam(r, "id")

	input, err := decodeReviewForm(r)
	if err != nil {
		renderError(w, r, h.views, err)
		return
	}

	if _, err := h.reviews.AddReview(r.Context(), campgroundID, input); err != nil {
		renderError(w, r, h.views, err)
		return
	}

	http.Redirect(w, r, "/campgrounds/"+campgroundID, http.StatusFound)
}

// Delete removes a review from its campground and redirects back to the
// campground page.
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	campgroundID := chi.URLParam(r, "id")
	reviewID := chi.URLParam(r, "reviewID")

	if err := h.reviews.RemoveReview(r.Context(), campgroundID, reviewID); err != nil {
		renderError(w, r, h.views, err)
		return
	}

	http.Redirect(w, r, "/campgrounds/"+campgroundID, http.StatusFound)
}
