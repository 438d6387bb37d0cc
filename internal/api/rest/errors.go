package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-account-sync/internal/api/shared/errors"
	"github.com/feral-file/ff-account-sync/internal/logger"
)

func respond(c *gin.Context, apiErr *apierrors.APIError) {
	c.JSON(apiErr.StatusCode(), apierrors.ErrorResponse{Error: apiErr})
}

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respond(c, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, details string) {
	respond(c, apierrors.NewValidationError(details))
}

// respondError writes an executor error; anything that is not an APIError becomes a 500
func respondError(c *gin.Context, err error) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		respond(c, apiErr)
		return
	}

	logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError, apierrors.ErrorResponse{
		Error: apierrors.NewInternalError("Internal server error"),
	})
}
