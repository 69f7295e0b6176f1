package handlers

import (
	"fmt"
	"net/http"

	"btc-energy-value/internal/analysis"
	"btc-energy-value/internal/api/models"
	"btc-energy-value/internal/config"
	"btc-energy-value/internal/model"
	"btc-energy-value/internal/observability"
	"btc-energy-value/internal/valuation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MaxSeriesYears bounds a single series request.
const MaxSeriesYears = 300

// ValuationHandler handles valuation, series and comparison requests.
type ValuationHandler struct {
	engine  *valuation.Engine
	history model.HistoricalTable
	log     *zap.SugaredLogger
}

// NewValuationHandler creates a new valuation handler. history may be empty.
func NewValuationHandler(engine *valuation.Engine, history model.HistoricalTable, log *zap.SugaredLogger) *ValuationHandler {
	if engine == nil {
		engine = valuation.New()
	}
	if history == nil {
		history = model.HistoricalTable{}
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &ValuationHandler{engine: engine, history: history, log: log}
}

// Valuate handles POST /api/v1/valuation
func (h *ValuationHandler) Valuate(c *gin.Context) {
	var req models.ValuationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	in, sc, ok := h.resolveInputs(c, req.Inputs, req.Date, req.Scenario)
	if !ok {
		return
	}

	result := h.engine.ValuateAt(in.TargetDate, sc, in, h.history)
	observability.RecordValuation(string(sc.Name), string(result.ShareSource))

	resp := models.ValuationResponse{Result: result}
	if req.MarketPriceUSD > 0 {
		p := valuation.Premium(req.MarketPriceUSD, result.FairPricePerBTC)
		resp.Premium = &p
	}
	c.JSON(http.StatusOK, resp)
}

// Series handles POST /api/v1/series
func (h *ValuationHandler) Series(c *gin.Context) {
	var req models.SeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}
	if span := req.EndYear - req.StartYear + 1; span > MaxSeriesYears {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SERIES_TOO_LONG",
				Message: fmt.Sprintf("series spans %d years, limit is %d", span, MaxSeriesYears),
				Details: map[string]interface{}{
					"start_year": req.StartYear,
					"end_year":   req.EndYear,
				},
			},
		})
		return
	}

	in, sc, ok := h.resolveInputs(c, req.Inputs, "", req.Scenario)
	if !ok {
		return
	}

	points := h.engine.SeriesFrom(req.StartYear, req.EndYear, sc, in, h.history)
	observability.RecordSeries(len(points))
	h.log.Debugw("series", "scenario", sc.Name, "start", req.StartYear, "end", req.EndYear, "points", len(points))

	resp := models.SeriesResponse{
		Scenario: sc.Name,
		Summary:  analysis.Summarize(sc.Name, points),
	}
	if req.IncludePoints == nil || *req.IncludePoints {
		resp.Points = points
	}
	c.JSON(http.StatusOK, resp)
}

// Compare handles POST /api/v1/compare
func (h *ValuationHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	in, _, ok := h.resolveInputs(c, req.Inputs, req.Date, "")
	if !ok {
		return
	}

	results := h.engine.Compare(in.TargetDate, in, h.history)
	for _, r := range results {
		observability.RecordValuation(string(r.Scenario), string(r.ShareSource))
	}

	c.JSON(http.StatusOK, models.CompareResponse{
		Date:     in.TargetDate,
		Rankings: analysis.RankByFairPrice(results, req.MarketPriceUSD),
	})
}

// resolveInputs applies the request overrides, validates and converts. On
// failure it writes the error response and returns ok=false.
func (h *ValuationHandler) resolveInputs(c *gin.Context, ic config.InputsConfig, date, scenario string) (model.ModelInputs, model.Scenario, bool) {
	if date != "" {
		if _, err := model.ParseDate(date); err != nil {
			badRequest(c, "INVALID_DATE", err)
			return model.ModelInputs{}, model.Scenario{}, false
		}
		ic.TargetDate = date
	}
	if scenario != "" {
		sc, found := model.ScenarioByName(scenario)
		if !found {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "UNKNOWN_SCENARIO",
					Message: fmt.Sprintf("unknown scenario %q", scenario),
					Details: map[string]interface{}{
						"valid": []model.ScenarioName{model.ScenarioBearish, model.ScenarioBase, model.ScenarioBullish},
					},
				},
			})
			return model.ModelInputs{}, model.Scenario{}, false
		}
		ic.Scenario = string(sc.Name)
	}

	if err := ic.Validate(); err != nil {
		badRequest(c, "INVALID_INPUTS", err)
		return model.ModelInputs{}, model.Scenario{}, false
	}
	in, err := ic.ToModelInputs()
	if err != nil {
		badRequest(c, "INVALID_INPUTS", err)
		return model.ModelInputs{}, model.Scenario{}, false
	}
	sc, _ := model.ScenarioByName(string(in.Scenario))
	return in, sc, true
}

func badRequest(c *gin.Context, code string, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}
