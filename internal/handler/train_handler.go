package handler

import (
	"net/http"

	"train-ticket-booking/internal/model"
	"train-ticket-booking/internal/service"
	"train-ticket-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TrainHandler struct {
	service service.TrainService
}

func NewTrainHandler(service service.TrainService) *TrainHandler {
	return &TrainHandler{service: service}
}

func (h *TrainHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/trains", h.Create)
	r.GET("/trains", h.List)
}

func (h *TrainHandler) Create(c *gin.Context) {
	var req model.CreateTrainRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	departureTime, err := ParseDepartureTime(req.DepartureTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid departure time"})
		return
	}

	train, err := h.service.AddTrain(c, req.Name, req.Seats, departureTime)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Train added successfully",
		"train":   train,
	})
}

func (h *TrainHandler) List(c *gin.Context) {
	trains, err := h.service.TrainList(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, trains)
}

func (h *TrainHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	log.Error("Unexpected error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
