package handlers

import (
	"net/http"

	"price-optimizer/internal/api/models"
	"price-optimizer/internal/config"
	"price-optimizer/internal/data"
	"price-optimizer/internal/pricing"
	"price-optimizer/internal/report"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// maxCompareScenarios bounds the compare fan-out.
const maxCompareScenarios = 100

// PricingHandler serves elasticity estimates, what-if simulations and
// revenue optimization over stored datasets. The handler is stateless:
// every request re-derives its model from the dataset, so a dataset swap
// can never leak a stale coefficient.
type PricingHandler struct {
	store *data.Store
	cfg   *config.Config
}

func NewPricingHandler(store *data.Store, cfg *config.Config) *PricingHandler {
	return &PricingHandler{store: store, cfg: cfg}
}

// Estimate handles GET /api/v1/datasets/:id/elasticity.
func (h *PricingHandler) Estimate(c *gin.Context) {
	id := c.Param("id")
	item, ok := h.store.Get(id)
	if !ok {
		writeNotFound(c, id)
		return
	}

	m, err := h.estimate(item)
	if err != nil {
		writeCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, toElasticity(id, m))
}

// Simulate handles POST /api/v1/simulate.
func (h *PricingHandler) Simulate(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeCoreError(c, err)
		return
	}

	item, ok := h.store.Get(req.DatasetID)
	if !ok {
		writeNotFound(c, req.DatasetID)
		return
	}

	m, err := h.estimate(item)
	if err != nil {
		writeCoreError(c, err)
		return
	}

	sim, err := pricing.Simulate(m, req.PercentageChange)
	if err != nil {
		writeCoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SimulateResponse{
		DatasetID:  req.DatasetID,
		Elasticity: toElasticity(req.DatasetID, m),
		Simulation: h.toSimulation(sim),
	})
}

// Compare handles POST /api/v1/simulate/compare: the same dataset under
// several candidate changes. Scenarios run concurrently; results come back
// in request order.
func (h *PricingHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeCoreError(c, err)
		return
	}
	if len(req.Changes) == 0 || len(req.Changes) > maxCompareScenarios {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: "changes must contain between 1 and 100 scenarios",
			},
		})
		return
	}

	item, ok := h.store.Get(req.DatasetID)
	if !ok {
		writeNotFound(c, req.DatasetID)
		return
	}

	m, err := h.estimate(item)
	if err != nil {
		writeCoreError(c, err)
		return
	}

	sims := make([]models.Simulation, len(req.Changes))
	var g errgroup.Group
	for i, pct := range req.Changes {
		i, pct := i, pct
		g.Go(func() error {
			sim, err := pricing.Simulate(m, pct)
			if err != nil {
				return err
			}
			sims[i] = h.toSimulation(sim)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		writeCoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CompareResponse{
		DatasetID:   req.DatasetID,
		Simulations: sims,
	})
}

// Optimize handles POST /api/v1/optimize.
func (h *PricingHandler) Optimize(c *gin.Context) {
	var req models.OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeCoreError(c, err)
		return
	}

	item, ok := h.store.Get(req.DatasetID)
	if !ok {
		writeNotFound(c, req.DatasetID)
		return
	}

	m, err := h.estimate(item)
	if err != nil {
		writeCoreError(c, err)
		return
	}

	domain := h.cfg.Domain()
	if req.Domain != nil {
		domain = pricing.Domain{Low: req.Domain.Low, High: req.Domain.High}
	}

	res, err := pricing.OptimizeStep(m, domain, h.cfg.Optimizer.StepPct)
	if err != nil {
		writeCoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OptimizeResponse{
		DatasetID:        req.DatasetID,
		PercentageChange: res.PercentageChange,
		Evaluated:        res.Evaluated,
		Domain:           models.DomainConfig{Low: domain.Low, High: domain.High},
		Simulation:       h.toSimulation(res.Simulation),
	})
}

func (h *PricingHandler) estimate(item *data.StoredDataset) (*pricing.ElasticityModel, error) {
	est := pricing.NewEstimator(h.cfg.EstimatorParams())
	return est.Estimate(item.Dataset)
}

func (h *PricingHandler) toSimulation(sim pricing.SimulationResult) models.Simulation {
	threshold := h.cfg.Report.NegligibleThresholdPct
	return models.Simulation{
		PercentageChange: sim.PercentageChange,
		NewPrice:         sim.NewPrice,
		VolumeMultiplier: sim.VolumeMultiplier,
		ProjectedVolume:  sim.ProjectedVolume,
		ProjectedRevenue: sim.ProjectedRevenue,
		BaselineRevenue:  sim.BaselineRevenue,
		RevenueDelta:     sim.RevenueDelta,
		RevenueDeltaPct:  sim.RevenueDeltaPct,
		VolumeDelta:      sim.VolumeDelta,
		VolumeDeltaPct:   sim.VolumeDeltaPct,
		Outcome:          string(report.Classify(sim, threshold)),
		Summary:          report.SummarizeThreshold(sim, threshold),
	}
}

func toElasticity(id string, m *pricing.ElasticityModel) models.ElasticityResponse {
	return models.ElasticityResponse{
		DatasetID:      id,
		BaselinePrice:  m.BaselinePrice,
		BaselineVolume: m.BaselineVolume,
		Coefficient:    m.Coefficient,
		Source:         string(m.Source),
	}
}
