package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/hisabapp/hisab/internal/apperrors"
	"github.com/hisabapp/hisab/internal/middleware"
)

// respondError maps engine errors onto HTTP statuses. A gateway failure
// means the optimistic change was already rolled back; the UI shows the
// message and the user retries manually.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		appErr = apperrors.NewNotFoundError(err.Error())
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		appErr = apperrors.NewBadRequestError(err.Error())
	case errors.Is(err, apperrors.ErrGateway):
		logger.Error("Gateway failure, local state rolled back", slog.String("error", err.Error()))
		appErr = apperrors.NewBadGatewayError(err.Error())
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		appErr = apperrors.NewInternalServerError(fallback)
	}
	c.JSON(appErr.Code, appErr)
}

func bindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind JSON", slog.String("error", err.Error()))

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, len(verrs))
		for i, fe := range verrs {
			fields[i] = fmt.Sprintf("%s failed on %q", fe.Field(), fe.Tag())
		}
		appErr := apperrors.NewBadRequestError("Validation failed: " + strings.Join(fields, ", "))
		c.JSON(appErr.Code, appErr)
		return
	}

	appErr := apperrors.NewBadRequestError("Invalid request format: " + err.Error())
	c.JSON(appErr.Code, appErr)
}
