package web

import (
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/utafrali/CampgroundsGo/pkg/errors"

	"github.com/utafrali/CampgroundsGo/internal/service"
)

// Forms submit nested fields with bracketed names, e.g. `campground[title]`.
// The decoders below unpack that shape; a body with no field under the
// expected object name is rejected the same way a missing object would be.

func formValues(r *http.Request, object string) (map[string]string, error) {
	if err := r.ParseForm(); err != nil {
		return nil, apperrors.InvalidInput("malformed form body")
	}

	prefix := object + "["
	values := make(map[string]string)
	for key := range r.PostForm {
		if strings.HasPrefix(key, prefix) && strings.HasSuffix(key, "]") {
			field := key[len(prefix) : len(key)-1]
			values[field] = r.PostForm.Get(key)
		}
	}

	if len(values) == 0 {
		return nil, apperrors.ValidationFailed(object + " is required")
	}
	return values, nil
}

func decodeCampgroundForm(r *http.Request) (service.CampgroundInput, error) {
	var input service.CampgroundInput

	values, err := formValues(r, "campground")
	if err != nil {
		return input, err
	}

	input.Title = values["title"]
	input.Image = values["image"]
	input.Location = values["location"]
	input.Description = values["description"]

	// An absent price cannot be told from a submitted 0 once decoded, so its
	// presence is checked here; the remaining fields fail required validation
	// on their zero values.
	raw, ok := values["price"]
	if !ok || raw == "" {
		return input, apperrors.ValidationFailed("price is required")
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return input, apperrors.ValidationFailed("price must be a number")
	}
	input.Price = price

	return input, nil
}

// decodeCampgroundUpdateForm decodes only the submitted fields, leaving the
// rest nil so the store merges instead of overwriting.
func decodeCampgroundUpdateForm(r *http.Request) (service.CampgroundUpdate, error) {
	var update service.CampgroundUpdate

	values, err := formValues(r, "campground")
	if err != nil {
		return update, err
	}

	if v, ok := values["title"]; ok {
		update.Title = &v
	}
	if v, ok := values["image"]; ok {
		update.Image = &v
	}
	if v, ok := values["location"]; ok {
		update.Location = &v
	}
	if v, ok := values["description"]; ok {
		update.Description = &v
	}
	if raw, ok := values["price"]; ok {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return update, apperrors.ValidationFailed("price must be a number")
		}
		update.Price = &price
	}

	return update, nil
}

func decodeReviewForm(r *http.Request) (service.ReviewInput, error) {
	var input service.ReviewInput

	values, err := formValues(r, "review")
	if err != nil {
		return input, err
	}

	input.Body = values["body"]

	if raw := values["rating"]; raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil {
			return input, apperrors.ValidationFailed("rating must be a number")
		}
		input.Rating = rating
	}

	return input, nil
}
