package handlers

import (
	"net/http"

	"price-optimizer/internal/analysis"
	"price-optimizer/internal/api/models"
	"price-optimizer/internal/config"
	"price-optimizer/internal/data"
	"price-optimizer/internal/report"

	"github.com/gin-gonic/gin"
)

// ReturnsHandler serves return-risk profiles.
type ReturnsHandler struct {
	store *data.Store
	cfg   *config.Config
}

func NewReturnsHandler(store *data.Store, cfg *config.Config) *ReturnsHandler {
	return &ReturnsHandler{store: store, cfg: cfg}
}

// Profile handles GET /api/v1/datasets/:id/returns.
func (h *ReturnsHandler) Profile(c *gin.Context) {
	id := c.Param("id")
	item, ok := h.store.Get(id)
	if !ok {
		writeNotFound(c, id)
		return
	}

	profile := analysis.AnalyzeBuckets(item.Dataset, h.cfg.Returns.Buckets)

	categories := make([]models.CategoryRisk, len(profile.Categories))
	for i, cat := range profile.Categories {
		categories[i] = toCategoryRisk(cat)
	}

	c.JSON(http.StatusOK, models.ReturnsResponse{
		DatasetID:  id,
		Overall:    toCategoryRisk(profile.Overall),
		Categories: categories,
		Advisory: report.RiskAdvisory(profile, report.RiskAdvisoryParams{
			SlopeWarning:   h.cfg.Returns.SlopeWarning,
			MaxMarkdownPct: h.cfg.Returns.MaxMarkdownPct,
		}),
	})
}

func toCategoryRisk(cat analysis.CategoryRisk) models.CategoryRisk {
	buckets := make([]models.BucketRate, len(cat.Buckets))
	for i, b := range cat.Buckets {
		buckets[i] = models.BucketRate{
			LowPct:     b.LowPct,
			HighPct:    b.HighPct,
			Records:    b.Records,
			Returns:    b.Returns,
			ReturnRate: b.ReturnRate,
		}
	}
	return models.CategoryRisk{
		Category:      cat.Category,
		Records:       cat.Records,
		Returns:       cat.Returns,
		ReturnRate:    cat.ReturnRate,
		MarkdownSlope: cat.MarkdownSlope,
		Sufficient:    cat.Sufficient,
		Buckets:       buckets,
	}
}
