package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"booking-api/core/broker"
	"booking-api/core/config"
	"booking-api/core/database"
	"booking-api/core/loader"
	"booking-api/core/logger"
	"booking-api/core/middleware/rayid"
	"booking-api/core/storage"
	"booking-api/feature/catalog"
	"booking-api/feature/homes"
	"booking-api/feature/homes/repository"
	"booking-api/feature/ingest"
	"booking-api/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "booking-api/docs/swagger"
)

// @title Booking API
// @version 1.0
// @description Register homes with their available dates and find the homes free on every day of a range.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the booking server",
	Long:  `Starts the HTTP server, seeds the catalog when configured and starts the ingest consumer when a broker is configured.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		// The catalog database is optional unless it is the seeding source.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to catalog database", zap.String("driver", cfg.Database.Driver))
		}

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		repo := repository.NewInMemoryRepository()
		homesFeature := homes.NewFeature(repo, logg, cfg.Homes)

		src, err := catalog.NewSource(cfg.Catalog, db, store, cfg.Storage.Bucket)
		if err != nil {
			logg.Fatal("Invalid catalog configuration", zap.Error(err))
		}
		if src != nil {
			if _, err := catalog.NewSeeder(src, homesFeature.Service(), logg, cfg.Catalog).Run(ctx); err != nil {
				logg.Fatal("Failed to seed catalog", zap.Error(err))
			}
		}

		var consumer *broker.BatchConsumer
		if cfg.Broker.Enabled() {
			handler := ingest.NewHandler(homesFeature.Service(), logg)
			consumer, err = broker.NewBatchConsumer(cfg.Broker, handler.HandleBatch, logg)
			if err != nil {
				logg.Fatal("Failed to connect to broker", zap.Error(err))
			}
			if err := consumer.Start(ctx); err != nil {
				logg.Fatal("Failed to start ingest consumer", zap.Error(err))
			}
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
			ReadTimeout:           time.Duration(cfg.Server.ReadTimeout()) * time.Second,
		})

		mgr := loader.NewManager(logg)
		mgr.Register(homesFeature)
		mgr.Register(integrity.NewFeature(integrity.Options{
			Auditor: repo,
			Client:  store,
			Bucket:  cfg.Storage.Bucket,
			Prefix:  cfg.Catalog.Prefix,
			DB:      db,
		}, logg))

		// RayID must be first so every log line below carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port), zap.Int("homes", repo.Len()))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		<-ctx.Done()
		logg.Info("Shutting down server...")
		_ = app.Shutdown()

		if consumer != nil {
			if err := consumer.Close(); err != nil {
				logg.Warn("Failed to close ingest consumer", zap.Error(err))
			}
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
