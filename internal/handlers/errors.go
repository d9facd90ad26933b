package handlers

import (
	"log/slog"
	"net/http"

	"github.com/d0ggzi/currency-parser/internal/apperrors"
	"github.com/d0ggzi/currency-parser/internal/dto"
	"github.com/d0ggzi/currency-parser/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError writes err with the status apperrors maps it to. Server-side
// failures are logged and answered with fallback instead of the raw error.
// The request ID is echoed so a client report can be matched to the logs.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := apperrors.HTTPStatus(err)
	resp := dto.ErrorResponse{Error: err.Error()}
	resp.RequestID, _ = middleware.GetRequestIDFromCtx(c.Request.Context())
	switch {
	case status >= http.StatusInternalServerError && status != http.StatusBadGateway:
		logger.Error(fallback, slog.String("error", err.Error()))
		resp.Error = fallback
	case status == http.StatusBadGateway:
		logger.Error("Upstream source failed", slog.String("error", err.Error()))
	default:
		logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, resp)
}
