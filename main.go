package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Jprcko/canberra-boating-signoffs-sub000/config"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/cron"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/database"
	availabilityRepo "github.com/Jprcko/canberra-boating-signoffs-sub000/database/repository/availability"
	bookingRepo "github.com/Jprcko/canberra-boating-signoffs-sub000/database/repository/booking"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/handlers"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/middleware"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/models"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/routes"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/services/booking"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/services/schedule"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	loc, err := time.LoadLocation(config.AppConfig.BookingTimezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid booking timezone %q: %v", config.AppConfig.BookingTimezone, err)
	}

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()
	bookRepo := bookingRepo.NewMongoBookingRepo()
	if err := availRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create availability indexes: %v", err)
	}
	if err := bookRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create booking indexes: %v", err)
	}

	// pricing and booking policy from config.
	rates := schedule.DefaultGroupRates()
	if config.AppConfig.ExtendedGroupRates {
		rates = schedule.ExtendedGroupRates()
	}
	pricing := schedule.NewPricingEngine(models.PriceList{
		FullPackage:   config.AppConfig.FullPackagePrice,
		GroupPackage:  config.AppConfig.GroupPackagePrice,
		TestReadiness: config.AppConfig.TestReadinessPrice,
	}, rates)
	policy := schedule.Policy{
		HorizonMonths:         config.AppConfig.BookingHorizonMonths,
		LimitedSeatsThreshold: config.AppConfig.LimitedSeatsThreshold,
	}

	queueClient := asynq.NewClient(cron.QueueRedisOpt())
	defer queueClient.Close()

	// services.
	bookingService := &booking.DefaultBookingService{
		AvailabilityRepo: availRepo,
		Repo:             bookRepo,
		Pricing:          pricing,
		Policy:           policy,
		Loc:              loc,
		Sessions:         utils.GetSessionCacheClient(),
		Cache:            utils.GetCacheClient(),
		Queue:            queueClient,
	}

	// background capacity recounts.
	cron.InitCapacityWorker(bookRepo, utils.GetCacheClient(), loc)
	utils.StartHealthMonitor(utils.GetCacheClient(), utils.GetSessionCacheClient(), database.MongoClient)

	// handlers.
	calendarHandler := handlers.NewCalendarHandler(bookingService, loc, policy.HorizonMonths)
	quoteHandler := handlers.NewQuoteHandler(bookingService)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	availabilityHandler := handlers.NewAvailabilityHandler(availRepo, loc)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetCalendarHandler: calendarHandler.GetCalendarHandler,
		GetQuoteHandler:    quoteHandler.GetQuoteHandler,

		StartSessionHandler:   bookingHandler.StartSession,
		UpdateSessionHandler:  bookingHandler.UpdateSession,
		ConfirmSessionHandler: bookingHandler.ConfirmSession,
		CancelSessionHandler:  bookingHandler.CancelSession,
		GetBookingHandler:     bookingHandler.GetBooking,
		CancelBookingHandler:  bookingHandler.CancelBooking,

		UpsertAvailabilityHandler: availabilityHandler.UpsertAvailabilityHandler,
		ListAvailabilityHandler:   availabilityHandler.ListAvailabilityHandler,
		DeleteAvailabilityHandler: availabilityHandler.DeleteAvailabilityHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
