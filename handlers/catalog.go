package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogRepo "tribook/database/repository/catalog"
	resourceRepo "tribook/database/repository/resource"
	"tribook/models"
	"tribook/utils"
)

// CatalogHandler serves reference data: services with their options, and
// bookable resources with their hours.
type CatalogHandler struct {
	Catalog   catalogRepo.CatalogRepository
	Resources resourceRepo.ResourceRepository
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(catalog catalogRepo.CatalogRepository, resources resourceRepo.ResourceRepository) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog, Resources: resources}
}

// GetService handles GET /api/catalog/services/:id.
func (h *CatalogHandler) GetService(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	def, err := h.Catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			utils.JSONError(c, http.StatusNotFound, "service not found", id)
			return
		}
		logger.Error("failed to fetch service", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch service", "")
		return
	}
	c.JSON(http.StatusOK, def)
}

// ListServices handles GET /api/catalog/services?businessId=&vertical=.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	logger := getLogger(c)
	businessID := c.Query("businessId")
	if businessID == "" {
		utils.JSONError(c, http.StatusBadRequest, "businessId is required", "")
		return
	}

	defs, err := h.Catalog.ListByBusiness(c.Request.Context(), businessID, models.Vertical(c.Query("vertical")))
	if err != nil {
		logger.Error("failed to list services", zap.String("businessId", businessID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list services", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": defs})
}

// GetResource handles GET /api/resources/:id.
func (h *CatalogHandler) GetResource(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	res, err := h.Resources.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			utils.JSONError(c, http.StatusNotFound, "resource not found", id)
			return
		}
		logger.Error("failed to fetch resource", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch resource", "")
		return
	}
	c.JSON(http.StatusOK, res)
}

// ListResources handles GET /api/resources?businessId=&vertical=.
func (h *CatalogHandler) ListResources(c *gin.Context) {
	logger := getLogger(c)
	businessID := c.Query("businessId")
	if businessID == "" {
		utils.JSONError(c, http.StatusBadRequest, "businessId is required", "")
		return
	}

	resources, err := h.Resources.ListByBusiness(c.Request.Context(), businessID, models.Vertical(c.Query("vertical")))
	if err != nil {
		logger.Error("failed to list resources", zap.String("businessId", businessID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list resources", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"resources": resources})
}
