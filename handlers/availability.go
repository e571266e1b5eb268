package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	catalogRepo "tribook/database/repository/catalog"
	"tribook/services/availability"
	"tribook/utils"
)

// AvailabilityHandler serves the slot grid the booking UI renders.
// Responses are cached briefly; the cache is display-only, the booking
// flow always re-validates against fresh reservations.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
	Cache   *redis.Client // nil disables response caching
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.AvailabilityService, cache *redis.Client) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, Cache: cache}
}

// GetDaySlots handles GET /api/availability/day.
// Query params: businessId (required), date (required, YYYY-MM-DD),
// resourceId, serviceId, options (comma separated), duration (minutes).
func (h *AvailabilityHandler) GetDaySlots(c *gin.Context) {
	logger := getLogger(c)

	q := availability.Query{
		BusinessID: c.Query("businessId"),
		ResourceID: c.Query("resourceId"),
		Date:       c.Query("date"),
		ServiceID:  c.Query("serviceId"),
	}
	if q.BusinessID == "" {
		utils.JSONError(c, http.StatusBadRequest, "businessId is required", "")
		return
	}
	if _, err := time.Parse("2006-01-02", q.Date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
		return
	}
	if raw := c.Query("options"); raw != "" {
		q.SelectedOptions = strings.Split(raw, ",")
	}
	if raw := c.Query("duration"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes < 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid duration", "expected a non-negative number of minutes")
			return
		}
		q.ExplicitDurationMinutes = &minutes
	}

	cacheKey := dayCacheKey(q)
	if h.Cache != nil {
		if data, err := h.Cache.Get(c.Request.Context(), cacheKey).Bytes(); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", data)
			return
		}
	}

	slots, err := h.Service.GetDaySlots(c.Request.Context(), q)
	if err != nil {
		var malformed *utils.MalformedTimeError
		switch {
		case errors.Is(err, catalogRepo.ErrServiceNotFound):
			utils.JSONError(c, http.StatusNotFound, "service not found", q.ServiceID)
		case errors.As(err, &malformed):
			logger.Error("stored reservation carries malformed time", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", "")
		default:
			logger.Error("failed to compute day slots", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", "")
		}
		return
	}

	if h.Cache != nil {
		if data, err := json.Marshal(slots); err == nil {
			// Best effort: a failed write only costs the next caller a recompute.
			if err := h.Cache.Set(c.Request.Context(), cacheKey, data, utils.DayCacheTTL).Err(); err != nil {
				logger.Warn("failed to cache day slots", zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, slots)
}

// dayCacheKey derives the cache key from every query field that shapes
// the answer; two queries differing in any of them never share an entry.
func dayCacheKey(q availability.Query) string {
	duration := "-"
	if q.ExplicitDurationMinutes != nil {
		duration = strconv.Itoa(*q.ExplicitDurationMinutes)
	}
	return utils.DayCachePrefix + strings.Join([]string{
		q.BusinessID,
		q.ResourceID,
		q.Date,
		q.ServiceID,
		strings.Join(q.SelectedOptions, ","),
		duration,
	}, "|")
}
