package handlers

import (
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"price-optimizer/internal/api/models"
	"price-optimizer/internal/data"

	"github.com/gin-gonic/gin"
)

// DatasetHandler manages uploaded datasets.
type DatasetHandler struct {
	store *data.Store
}

func NewDatasetHandler(store *data.Store) *DatasetHandler {
	return &DatasetHandler{store: store}
}

// Upload handles POST /api/v1/datasets (multipart field "file").
func (h *DatasetHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "MISSING_FILE",
				Message: "multipart field 'file' with a CSV is required",
			},
		})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}
	defer f.Close()

	name := strings.TrimSuffix(fileHeader.Filename, filepath.Ext(fileHeader.Filename))
	ds, err := data.ReadCSV(f, name)
	if err != nil {
		writeCoreError(c, err)
		return
	}

	stored := h.store.Put(ds)
	log.Printf("DatasetHandler: stored dataset %s (%q, %d records)", stored.ID, ds.Name, ds.Len())
	c.JSON(http.StatusCreated, toDatasetInfo(stored))
}

// List handles GET /api/v1/datasets.
func (h *DatasetHandler) List(c *gin.Context) {
	items := h.store.List()
	infos := make([]models.DatasetInfo, len(items))
	for i, item := range items {
		infos[i] = toDatasetInfo(item)
	}
	c.JSON(http.StatusOK, gin.H{"datasets": infos, "count": len(infos)})
}

// Get handles GET /api/v1/datasets/:id.
func (h *DatasetHandler) Get(c *gin.Context) {
	id := c.Param("id")
	item, ok := h.store.Get(id)
	if !ok {
		writeNotFound(c, id)
		return
	}
	c.JSON(http.StatusOK, toDatasetInfo(item))
}

// Delete handles DELETE /api/v1/datasets/:id.
func (h *DatasetHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !h.store.Delete(id) {
		writeNotFound(c, id)
		return
	}
	c.Status(http.StatusNoContent)
}

func toDatasetInfo(item *data.StoredDataset) models.DatasetInfo {
	stats := item.Dataset.PriceStats()
	return models.DatasetInfo{
		ID:         item.ID,
		Name:       item.Dataset.Name,
		Records:    item.Dataset.Len(),
		Categories: item.Dataset.Categories(),
		MeanPrice:  stats.Mean,
		CreatedAt:  item.CreatedAt,
		ExpiresAt:  item.ExpiresAt,
	}
}
