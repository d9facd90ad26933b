package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/d0ggzi/currency-parser/internal/core/ports/services"
	"github.com/d0ggzi/currency-parser/internal/dto"
	"github.com/d0ggzi/currency-parser/internal/platform/logctx"
	"github.com/gin-gonic/gin"
)

// chartHandler handles HTTP requests for chart-ready series.
type chartHandler struct {
	chartService portssvc.ChartSvc
}

func newChartHandler(cs portssvc.ChartSvc) *chartHandler {
	return &chartHandler{
		chartService: cs,
	}
}

// registerChartRoutes registers routes related to charts.
func registerChartRoutes(rg *gin.RouterGroup, chartService portssvc.ChartSvc) {
	h := newChartHandler(chartService)

	rg.POST("/charts", h.queryChart)
}

// queryChart godoc
// @Summary Query chart data
// @Description Returns relative currency values for the selected countries in Chart.js shape. Countries sharing a currency share a colour.
// @Tags charts
// @Accept  json
// @Produce  json
// @Param   request body dto.ChartRequest true "Countries and date window"
// @Success 200 {object} dto.ChartResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid window or no countries selected"
// @Failure 404 {object} dto.ErrorResponse "Unknown country"
// @Failure 500 {object} dto.ErrorResponse "Failed to query chart data"
// @Router /charts [post]
func (h *chartHandler) queryChart(c *gin.Context) {
	logger := logctx.FromContext(c.Request.Context())
	var req dto.ChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for QueryChart", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.BindingErrorMessage(err)})
		return
	}

	series, err := h.chartService.QueryChartData(c.Request.Context(), req.Countries, req.StartDate, req.EndDate)
	if err != nil {
		respondError(c, logger, err, "Failed to query chart data")
		return
	}

	logger.Info("Chart data retrieved", slog.Int("countries", len(req.Countries)), slog.Int("labels", len(series.Labels)))
	c.JSON(http.StatusOK, dto.ToChartResponse(series))
}
