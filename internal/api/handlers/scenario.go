package handlers

import (
	"net/http"

	"btc-energy-value/internal/api/models"
	"btc-energy-value/internal/model"

	"github.com/gin-gonic/gin"
)

var scenarioDescriptions = map[model.ScenarioName]string{
	model.ScenarioBearish: "Half the share ceiling, cheaper power and a thin markup over cost.",
	model.ScenarioBase:    "Inputs as given with a 1.5x markup over cost.",
	model.ScenarioBullish: "A higher share ceiling, dearer power and a 2x markup over cost.",
}

// ListScenarios handles GET /api/v1/scenarios
func ListScenarios(c *gin.Context) {
	presets := model.Scenarios()
	out := make([]models.ScenarioInfo, 0, len(presets))
	for _, sc := range presets {
		out = append(out, models.ScenarioInfo{
			Scenario:    sc,
			Description: scenarioDescriptions[sc.Name],
		})
	}
	c.JSON(http.StatusOK, gin.H{"scenarios": out})
}
