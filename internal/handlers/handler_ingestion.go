package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/d0ggzi/currency-parser/internal/core/ports/services"
	"github.com/d0ggzi/currency-parser/internal/dto"
	"github.com/d0ggzi/currency-parser/internal/middleware"
	"github.com/d0ggzi/currency-parser/internal/platform/logctx"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// ingestionHandler handles HTTP requests that trigger scraping runs.
type ingestionHandler struct {
	ingestionService portssvc.IngestionSvc
}

func newIngestionHandler(is portssvc.IngestionSvc) *ingestionHandler {
	return &ingestionHandler{
		ingestionService: is,
	}
}

// registerIngestionRoutes registers routes related to ingestion runs.
func registerIngestionRoutes(rg *gin.RouterGroup, ingestionService portssvc.IngestionSvc, ingestLimiter *limiter.Limiter) {
	h := newIngestionHandler(ingestionService)

	handlers := []gin.HandlerFunc{h.runIngestion}
	if ingestLimiter != nil {
		handlers = append([]gin.HandlerFunc{middleware.RateLimit(ingestLimiter)}, handlers...)
	}
	rg.POST("/ingestions", handlers...)
}

// runIngestion godoc
// @Summary Run an ingestion
// @Description Scrapes country mappings and currency history for the window and stores them. Re-running over unchanged data changes no rows.
// @Tags ingestions
// @Accept  json
// @Produce  json
// @Param   request body dto.IngestRequest true "Date window (YYYY-MM-DD, years at most 2 apart)"
// @Success 200 {object} dto.IngestReportResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid date window"
// @Failure 404 {object} dto.ErrorResponse "Currency referenced by upstream is not seeded"
// @Failure 429 {object} dto.ErrorResponse "Too many ingestion requests"
// @Failure 502 {object} dto.ErrorResponse "Upstream source unavailable or changed"
// @Failure 500 {object} dto.ErrorResponse "Failed to run ingestion"
// @Router /ingestions [post]
func (h *ingestionHandler) runIngestion(c *gin.Context) {
	logger := logctx.FromContext(c.Request.Context())
	var req dto.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RunIngestion", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.BindingErrorMessage(err)})
		return
	}

	logger = logger.With(slog.String("start_date", req.StartDate), slog.String("end_date", req.EndDate))
	logger.Info("Received request to run ingestion")

	report, err := h.ingestionService.Ingest(c.Request.Context(), req.StartDate, req.EndDate)
	if err != nil {
		respondError(c, logger, err, "Failed to run ingestion")
		return
	}

	logger.Info("Ingestion completed", slog.String("run_id", report.RunID), slog.Int64("rows_changed", report.TotalRowsChanged()))
	c.JSON(http.StatusOK, dto.ToIngestReportResponse(report))
}
