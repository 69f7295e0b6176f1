package handlers

import (
	"net/http"

	"btc-energy-value/internal/api/models"

	"github.com/gin-gonic/gin"
)

// GetHistory handles GET /api/v1/history
func (h *ValuationHandler) GetHistory(c *gin.Context) {
	points := h.history.Points()
	c.JSON(http.StatusOK, models.HistoryResponse{
		Count:  len(points),
		Points: points,
	})
}
