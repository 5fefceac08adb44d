package main

import (
	"log"

	"github.com/fitclass/booking-service/config"
	"github.com/fitclass/booking-service/internal/handler"
	"github.com/fitclass/booking-service/internal/middleware"
	"github.com/fitclass/booking-service/internal/repository"
	"github.com/fitclass/booking-service/internal/service"
	"github.com/fitclass/booking-service/internal/validator"
	"github.com/fitclass/booking-service/pkg/cache"
	"github.com/fitclass/booking-service/pkg/database"
	"github.com/fitclass/booking-service/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// Booking notifications; the service runs fine without a broker
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Printf("RabbitMQ unavailable, booking events disabled: %v", err)
		} else {
			publisher = p
			defer publisher.Close()
		}
	}

	classCache := cache.NewClassCache(cache.NewRedisClient(cfg.RedisAddr), cfg.CacheTTL)

	// Repositories
	classRepo := repository.NewClassRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Services
	catalogSvc := service.NewCatalogService(classRepo, classCache)
	bookingSvc := service.NewBookingService(bookingRepo, classRepo, classCache, publisher)

	// Echo
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "fitness-booking"})
	})

	handler.NewClassHandler(catalogSvc).RegisterRoutes(e)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e)

	log.Printf("Fitness booking service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
