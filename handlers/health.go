package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tribook/utils"
)

// HealthCheck handles GET /health with the latest stored snapshot.
func HealthCheck(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
