package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	reservationRepo "tribook/database/repository/reservation"
	resourceRepo "tribook/database/repository/resource"
	"tribook/models"
	"tribook/services/booking"
	"tribook/utils"
)

// BookingHandler exposes the hold → confirm workflow.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// HoldBooking handles POST /api/booking/hold: validate the requested slot
// against fresh data and persist a pending reservation.
func (h *BookingHandler) HoldBooking(c *gin.Context) {
	logger := getLogger(c)

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking request", err.Error())
		return
	}
	if err := validateBookingRequest(req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking request", err.Error())
		return
	}

	resp, err := h.Service.Hold(c.Request.Context(), req)
	if err != nil {
		h.writeBookingError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ConfirmBooking handles POST /api/booking/confirm: promote a held
// reservation after a same-call re-validation against current data.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	logger := getLogger(c)

	var input struct {
		SessionID string `json:"sessionID" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "sessionID is required", err.Error())
		return
	}

	resp, err := h.Service.Confirm(c.Request.Context(), input.SessionID)
	if err != nil {
		h.writeBookingError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BookDirect handles POST /api/booking/book: the one-shot
// validate-and-persist path.
func (h *BookingHandler) BookDirect(c *gin.Context) {
	logger := getLogger(c)

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking request", err.Error())
		return
	}
	if err := validateBookingRequest(req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking request", err.Error())
		return
	}

	resp, err := h.Service.Book(c.Request.Context(), req)
	if err != nil {
		h.writeBookingError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// CancelBooking handles POST /api/booking/cancel/:id.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	if err := h.Service.Cancel(c.Request.Context(), id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			utils.JSONError(c, http.StatusNotFound, "reservation not found", id)
			return
		}
		logger.Error("failed to cancel reservation", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel reservation", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": id})
}

// writeBookingError maps workflow errors onto HTTP results. A slot
// conflict is an expected outcome and comes back as 409 with the
// conflicting interval, so the client can re-fetch fresh slots.
func (h *BookingHandler) writeBookingError(c *gin.Context, logger *zap.Logger, err error) {
	if conflict, ok := booking.AsConflict(err); ok {
		c.JSON(http.StatusConflict, gin.H{
			"error":    "slot no longer available",
			"conflict": conflict.Conflict,
		})
		return
	}
	if errors.Is(err, booking.ErrSessionNotFound) {
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
		return
	}
	if errors.Is(err, booking.ErrOutsideBusinessHours) {
		utils.JSONError(c, http.StatusBadRequest, "requested slot is outside business hours", "")
		return
	}
	if errors.Is(err, resourceRepo.ErrResourceNotFound) {
		utils.JSONError(c, http.StatusNotFound, "resource not found", "")
		return
	}
	logger.Error("booking workflow failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "booking failed", "")
}

func validateBookingRequest(req models.BookingRequest) error {
	if req.BusinessID == "" {
		return errors.New("businessId is required")
	}
	if req.ResourceID == "" {
		return errors.New("resourceId is required")
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return errors.New("date must be YYYY-MM-DD")
	}
	if req.Start < 0 || req.Start >= 1440 {
		return errors.New("start must be minutes within the day")
	}
	return nil
}
