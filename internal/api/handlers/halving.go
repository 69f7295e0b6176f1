package handlers

import (
	"net/http"

	"btc-energy-value/internal/api/models"
	"btc-energy-value/internal/halving"
	"btc-energy-value/internal/model"

	"github.com/gin-gonic/gin"
)

// HalvingHandler serves the subsidy schedule.
type HalvingHandler struct {
	schedule *halving.Schedule
}

// NewHalvingHandler creates a new halving handler; nil uses halving.Default.
func NewHalvingHandler(schedule *halving.Schedule) *HalvingHandler {
	if schedule == nil {
		schedule = halving.Default
	}
	return &HalvingHandler{schedule: schedule}
}

// ListHalvings handles GET /api/v1/halvings
func (h *HalvingHandler) ListHalvings(c *gin.Context) {
	var req models.HalvingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	eras := h.schedule.Eras()
	if req.Through != "" {
		through, err := model.ParseDate(req.Through)
		if err != nil {
			badRequest(c, "INVALID_DATE", err)
			return
		}
		eras = h.schedule.Through(through)
	}

	out := make([]models.EraInfo, 0, len(eras))
	for _, e := range eras {
		out = append(out, models.EraInfo{Era: e, Known: halving.IsKnown(e)})
	}
	c.JSON(http.StatusOK, gin.H{"eras": out})
}
