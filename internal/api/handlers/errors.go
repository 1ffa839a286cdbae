package handlers

import (
	"errors"
	"net/http"

	"price-optimizer/internal/api/models"
	"price-optimizer/internal/data"
	"price-optimizer/internal/pricing"

	"github.com/gin-gonic/gin"
)

// writeCoreError maps core/loader error kinds onto HTTP responses. All of
// them are terminal for the requested operation; nothing is retried.
func writeCoreError(c *gin.Context, err error) {
	var insufficient *pricing.InsufficientDataError
	if errors.As(err, &insufficient) {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INSUFFICIENT_DATA",
				Message: err.Error(),
				Details: map[string]interface{}{
					"records": insufficient.Records,
					"hint":    "add more historical transactions with price variation",
				},
			},
		})
		return
	}

	var outOfRange *pricing.OutOfRangeError
	if errors.As(err, &outOfRange) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "OUT_OF_RANGE",
				Message: err.Error(),
				Details: map[string]interface{}{
					"valid_low":  outOfRange.Low,
					"valid_high": outOfRange.High,
				},
			},
		})
		return
	}

	var degenerate *pricing.DegenerateElasticityError
	if errors.As(err, &degenerate) {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "DEGENERATE_ELASTICITY",
				Message: err.Error(),
			},
		})
		return
	}

	var schema *data.SchemaError
	if errors.As(err, &schema) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SCHEMA_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		},
	})
}

func writeNotFound(c *gin.Context, id string) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "DATASET_NOT_FOUND",
			Message: "unknown or expired dataset: " + id,
		},
	})
}
