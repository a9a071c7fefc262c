package main

import (
	"context"
	"log"

	"train-ticket-booking/config"
	"train-ticket-booking/internal/handler"
	"train-ticket-booking/internal/notification"
	"train-ticket-booking/internal/queue"
	"train-ticket-booking/internal/repository"
	"train-ticket-booking/internal/service"
	"train-ticket-booking/internal/worker"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	gin.SetMode(cfg.Server.Mode)

	trainRepository := repository.NewMemoryTrainRepository()
	bookingRepository := repository.NewMemoryBookingRepository()

	notificationQueue := queue.NewNotificationQueue(cfg.Notification.QueueSize)
	emailSender := notification.NewLogEmailSender()

	notificationWorker := worker.NewNotificationWorker(emailSender, notificationQueue)
	if err := notificationWorker.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start notification worker: %v", err)
	}

	dispatcher := notification.NewReminderDispatcher(notificationQueue, cfg.Notification.ReminderLead)

	trainService := service.NewTrainService(trainRepository)
	bookingService := service.NewBookingService(trainRepository, bookingRepository, dispatcher)

	router := gin.Default()
	handler.NewTrainHandler(trainService).RegisterRoutes(router)
	handler.NewBookingHandler(bookingService).RegisterRoutes(router)

	if err := router.Run(cfg.Server.Addr()); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
