package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"farm_manager/internal/config"
	"farm_manager/internal/database"
	"farm_manager/internal/events"
	"farm_manager/internal/handlers"
	"farm_manager/internal/logger"
	"farm_manager/internal/migrations"
	"farm_manager/internal/redis"
	"farm_manager/internal/repository"
	"farm_manager/internal/services"
	"farm_manager/pkg/whatsapp"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	db, err := database.Initialize(cfg.DatabaseURL, logger.GormLevel(cfg.LogLevel))
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := migrations.RunMigrations(db, log); err != nil {
		return err
	}

	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	publisher, err := newPublisher(cfg, log)
	if err != nil {
		return err
	}
	defer publisher.Close()

	decimal.MarshalJSONWithoutQuotes = true
	gin.SetMode(cfg.GinMode)

	router := buildRouter(cfg, db, redisClient, publisher, log)
	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("Graceful shutdown failed", zap.Error(err))
		}
	}()

	log.Info("Server starting", zap.String("port", cfg.ServerPort))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Info("Server stopped")
	return nil
}

// newPublisher connects to Kafka when brokers are configured. Without
// brokers events are dropped.
func newPublisher(cfg *config.Config, log *zap.Logger) (events.Publisher, error) {
	if len(cfg.KafkaBrokers) == 0 {
		log.Info("Kafka is not configured, domain events are disabled")
		return events.NopPublisher{}, nil
	}
	publisher, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, log)
	if err != nil {
		return nil, err
	}
	return publisher, nil
}

func buildRouter(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, publisher events.Publisher, log *zap.Logger) *gin.Engine {
	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	gardenRepo := repository.NewGardenRepository(db)
	cropTypeRepo := repository.NewCropTypeRepository(db)
	harvestRepo := repository.NewHarvestRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	careRepo := repository.NewCareRepository(db)
	workerRepo := repository.NewWorkerRepository(db)
	laborRecordRepo := repository.NewLaborRecordRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	statsRepo := repository.NewStatisticsRepository(db)

	// Initialize services
	var notifier services.NotificationService
	if cfg.WhatsAppAPIURL != "" {
		client := whatsapp.NewClient(cfg.WhatsAppAPIURL, cfg.WhatsAppUsername, cfg.WhatsAppPassword, cfg.WhatsAppPath)
		notifier = services.NewNotificationService(client)
	}

	authService := services.NewAuthService(userRepo, redisClient, time.Duration(cfg.SessionTimeout)*time.Second)
	orderService := services.NewOrderService(services.OrderServiceDeps{
		Orders:     orderRepo,
		OrderItems: orderItemRepo,
		Customers:  customerRepo,
		CropTypes:  cropTypeRepo,
		Notifier:   notifier,
		Publisher:  publisher,
		Log:        log,
	})

	health := handlers.NewHealthHandler(
		handlers.HealthCheck{Name: "database", Check: func(ctx context.Context) error { return database.Ping(ctx, db) }},
		handlers.HealthCheck{Name: "redis", Check: redisClient.Ping},
	)

	h := handlers.Handlers{
		Auth:       handlers.NewAuthHandler(authService),
		Garden:     handlers.NewGardenHandler(services.NewGardenService(gardenRepo)),
		Harvest:    handlers.NewHarvestHandler(services.NewHarvestService(cropTypeRepo, harvestRepo, gardenRepo)),
		Inventory:  handlers.NewInventoryHandler(services.NewInventoryService(inventoryRepo, publisher, log)),
		Care:       handlers.NewCareHandler(services.NewCareService(careRepo, gardenRepo, publisher, log)),
		Labor:      handlers.NewLaborHandler(services.NewLaborService(workerRepo, laborRecordRepo)),
		Order:      handlers.NewOrderHandler(orderService),
		Statistics: handlers.NewStatisticsHandler(services.NewStatisticsService(statsRepo, orderRepo)),
		Health:     health,
	}
	return handlers.NewRouter(h, authService, log)
}
