package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/trykin/spark/pkg/ingestion"
	"github.com/trykin/spark/pkg/services"
)

// errorHandler renders every error as {"detail": "..."}, the shape the
// widget and admin portal both parse.
func errorHandler(logger *slog.Logger) func(c *echo.Context, err error) {
	return func(c *echo.Context, err error) {
		if resp, respErr := echo.UnwrapResponse(c.Response()); respErr == nil && resp.Committed {
			return
		}

		code := http.StatusInternalServerError
		detail := "Internal server error"

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			detail = he.Message
		} else {
			logger.Error("Unhandled request error",
				"method", c.Request().Method, "path", c.Request().URL.Path, "error", err)
		}

		if jsonErr := c.JSON(code, map[string]string{"detail": detail}); jsonErr != nil {
			logger.Error("Failed to write error response", "error", jsonErr)
		}
	}
}

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	}

	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}

// mapIngestError additionally turns unprocessable sources into a 422
// with the sentinel's message, which the admin UI shows verbatim.
func mapIngestError(err error) *echo.HTTPError {
	if errors.Is(err, ingestion.ErrPDFNotSupported) || errors.Is(err, ingestion.ErrUnsupportedContentType) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return mapServiceError(err)
}
