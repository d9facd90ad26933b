package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/d0ggzi/currency-parser/internal/core/ports/services"
	"github.com/d0ggzi/currency-parser/internal/dto"
	"github.com/d0ggzi/currency-parser/internal/platform/logctx"
	"github.com/gin-gonic/gin"
)

type countryHandler struct {
	chartService portssvc.ChartSvc
}

func registerCountryRoutes(rg *gin.RouterGroup, chartService portssvc.ChartSvc) {
	h := &countryHandler{chartService: chartService}

	rg.GET("/countries", h.listCountries)
}

// listCountries godoc
// @Summary List countries
// @Description Lists every country known from previous ingestion runs
// @Tags countries
// @Produce  json
// @Success 200 {object} dto.CountryListResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list countries"
// @Router /countries [get]
func (h *countryHandler) listCountries(c *gin.Context) {
	logger := logctx.FromContext(c.Request.Context())

	countries, err := h.chartService.ListCountries(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list countries")
		return
	}

	logger.Debug("Countries listed", slog.Int("count", len(countries)))
	c.JSON(http.StatusOK, dto.CountryListResponse{Countries: countries})
}
