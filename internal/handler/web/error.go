package web

import (
	"log/slog"
	"net/http"

	apperrors "github.com/utafrali/CampgroundsGo/pkg/errors"
	"github.com/utafrali/CampgroundsGo/pkg/logger"

	"github.com/utafrali/CampgroundsGo/internal/view"
)

// renderError maps an error to its status and user-facing message and renders
// the error page. Internal causes reach the log, never the page.
func renderError(w http.ResponseWriter, r *http.Request, views *view.Renderer, err error) {
	status := apperrors.HTTPStatus(err)
	message := apperrors.Message(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	} else {
		log.DebugContext(r.Context(), "request rejected",
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.String("reason", message),
		)
	}

	if renderErr := views.Render(w, status, "error", map[string]any{
		"Status":  status,
		"Message": message,
	}); renderErr != nil {
		log.ErrorContext(r.Context(), "failed to render error page",
			slog.String("error", renderErr.Error()),
		)
		http.Error(w, message, status)
	}
}
