package view

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/utafrali/CampgroundsGo/internal/domain"
)

func TestNewRendererParsesAllPages(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	for _, page := range pages {
		assert.Contains(t, r.templates, page)
	}
}

func TestRenderIndex(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	campgrounds := []domain.Campground{
		{ID: primitive.NewObjectID(), Title: "Silent Creek", Location: "Bend, Oregon"},
	}

	rec := httptest.NewRecorder()
	err = r.Render(rec, http.StatusOK, "campgrounds/index", map[string]any{"Campgrounds": campgrounds})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Silent Creek")
	assert.Contains(t, rec.Body.String(), "/campgrounds/"+campgrounds[0].ID.Hex())
}

func TestRenderShowWithReviews(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	detail := &domain.CampgroundDetail{
		Campground: domain.Campground{
			ID:    primitive.NewObjectID(),
			Title: "Silent Creek",
			Price: 12.5,
		},
		ResolvedReviews: []domain.Review{
			{ID: primitive.NewObjectID(), Body: "Lovely views", Rating: 4},
		},
	}

	rec := httptest.NewRecorder()
	err = r.Render(rec, http.StatusOK, "campgrounds/show", map[string]any{"Campground": detail})
	require.NoError(t, err)

	body := rec.Body.String()
	assert.Contains(t, body, "$12.50/night")
	assert.Contains(t, body, "Lovely views")
	assert.Contains(t, body, "Rating: 4/5")
}

func TestRenderErrorPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	err = r.Render(rec, http.StatusBadRequest, "error", map[string]any{
		"Status":  http.StatusBadRequest,
		"Message": "No campground found",
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No campground found")
}

func TestRenderEscapesUserContent(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	detail := &domain.CampgroundDetail{
		Campground: domain.Campground{
			ID:          primitive.NewObjectID(),
			Title:       "<script>alert(1)</script>",
			Description: "safe",
		},
	}

	rec := httptest.NewRecorder()
	err = r.Render(rec, http.StatusOK, "campgrounds/show", map[string]any{"Campground": detail})
	require.NoError(t, err)
	assert.NotContains(t, rec.Body.String(), "<script>alert(1)</script>")
}

func TestRenderUnknownPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	err = r.Render(rec, http.StatusOK, "nope", nil)
	require.Error(t, err)
	assert.Equal(t, 0, rec.Body.Len())
}
