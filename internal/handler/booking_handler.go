package handler

import (
	"net/http"
	"strconv"

	"train-ticket-booking/internal/model"
	"train-ticket-booking/internal/service"
	apperrors "train-ticket-booking/pkg/app_errors"
	"train-ticket-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service service.BookingService
}

func NewBookingHandler(service service.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/book", h.Create)
	r.GET("/bookings", h.List)
	r.GET("/booking/:booking_id", h.GetByID)
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req model.CreateBookingRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	booking, err := h.service.BookTicket(c, req)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking successful",
		"booking": booking,
	})
}

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.service.BookingList(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("booking_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}

	booking, err := h.service.GetBookingByID(c, id)
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrTrainNotFound:
		log.Warn("Train not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Train not found"})
	case err == apperrors.ErrInsufficientSeats:
		log.Warn("Not enough seats available")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not enough seats available"})
	case err == apperrors.ErrBookingNotFound:
		log.Warn("Booking not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
