package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/utafrali/CampgroundsGo/pkg/errors"

	"github.com/utafrali/CampgroundsGo/internal/view"
)

// CampgroundHandler serves the campground pages.
type CampgroundHandler struct {
	campgrounds CampgroundService
	views       *view.Renderer
}

// NewCampgroundHandler creates a new campground page handler.
func NewCampgroundHandler(campgrounds CampgroundService, views *view.Renderer) *CampgroundHandler {
	return &CampgroundHandler{campgrounds: campgrounds, views: views}
}

// Home renders the landing page.
func (h *CampgroundHandler) Home(w http.ResponseWriter, r *http.Request) {
	if err := h.views.Render(w, http.StatusOK, "home", nil); err != nil {
		renderError(w, r, h.views, apperrors.Internal(err))
	}
}

// Index renders the listing of all campgrounds.
func (h *CampgroundHandler) Index(w http.ResponseWriter, r *http.Request) {
	campgrounds, err := h.campgrounds.List(r.Context())
	if err != nil {
		renderError(w, r, h.views, err)
		return
	}

	if err := h.views.Render(w, http.StatusOK, "campgrounds/index", map[string]any{
		"Campgrounds": campgrounds,
	}); err != nil {
		renderError(w, r, h.views, apperrors.Internal(err))
	}
}

// New renders the creation form.
func (h *CampgroundHandler) New(w http.ResponseWriter, r *http.Request) {
	if err := h.views.Render(w, http.StatusOK, "campgrounds/new", nil); err != nil {
		renderError(w, r, h.views, apperrors.Internal(err))
	}
}

// Create handles the creation form submission and redirects to the new
// listing's page.
func (h *CampgroundHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, err := decodeCampgroundForm(r)
	if err != nil {
		renderError(w, r, h.views, err)
		return
	}

	campground, err := h.campgrounds.Create(r.Context(), input)
	if err != nil {
		renderError(w, r, h.views, err)
		return
	}

	http.Redirect(w, r, "/campgrounds/"+campground.ID.Hex(), http.StatusFound)
}

// Show renders a single listing with its reviews.
func (h *CampgroundHandler) Show(w http.ResponseWriter, r *http.Request) {
	detail, err := h.campgrounds.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		renderError(w, r, h.views, err)
		return
	}

	if err := h.views.Render(w, http.StatusOK, "campgrounds/show", map[string]any{
		"Campground": detail,
	}); err != nil {
		renderError(w, r, h.views, apperrors.Internal(err))
	}
}

// Edit renders the edit form pre-filled with the listing's fields.
func (h *CampgroundHandler) Edit(w http.ResponseWriter, r *http.Request) {
	campground, err := h.campgrounds.GetForEdit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		renderError(w, r, h.views, err)
		return
	}

	if err := h.views.Render(w, http.StatusOK, "campgrounds/edit", map[string]any{
		"Campground": campground,
	}); err != nil {
		renderError(w, r, h.views, apperrors.Internal(err))
	}
}

// Update handles the edit form submission and redirects back to the listing.
// Only submitted fields are touched.
func (h *CampgroundHandler) Update(w http.ResponseWriter, r *http.Request) {
	input, err := decodeCampgroundUpdateForm(r)
	if err != nil {
		renderError(w, r, h.views, err)
		return
	}

	campground, err := h.campgrounds.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		renderError(w, r, h.views, err)
		return
	}

	http.Redirect(w, r, "/campgrounds/"+campground.ID.Hex(), http.StatusFound)
}

// Delete removes a listing and redirects to the index.
func (h *CampgroundHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.campgrounds.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		renderError(w, r, h.views, err)
		return
	}

	http.Redirect(w, r, "/campgrounds", http.StatusFound)
}
