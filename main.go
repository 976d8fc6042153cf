// File: slotbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"slotbook/config"
	"slotbook/cron"
	"slotbook/handlers"
	"slotbook/middleware"
	"slotbook/routes"
	"slotbook/services/availability"
	"slotbook/services/booking"
	"slotbook/services/calendar"
	"slotbook/services/crm"
	"slotbook/services/notification"
	"slotbook/services/tasks"
	"slotbook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitReminderQueue()

	calendarService, err := calendar.NewGoogleCalendarService(context.Background())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	mailSender := notification.NewSMTPSender()
	crmService := crm.NewDefaultSubmissionService()
	reminderScheduler := tasks.NewAsynqReminderScheduler()

	availabilityService := &availability.DefaultAvailabilityService{
		Calendar: calendarService,
	}
	bookingService := &booking.DefaultBookingService{
		Calendar:  calendarService,
		Notifier:  mailSender,
		CRM:       crmService,
		Reminders: reminderScheduler,
	}

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)

	handlerBundle := &routes.HandlerBundle{
		Availability: availabilityHandler,
		Booking:      bookingHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the background reminder worker.
	cron.InitReminderWorker(mailSender)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
