package middleware

import (
	"log"
	"net/http"

	"price-optimizer/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers from handler panics and answers with the same
// error envelope the handlers use, so clients never see a second shape.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("[api] panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: "an unexpected error occurred",
			},
		})
		c.Abort()
	})
}
