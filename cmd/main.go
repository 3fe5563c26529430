package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kyz7/gallery/internal/config"
	"github.com/Kyz7/gallery/internal/database"
	"github.com/Kyz7/gallery/internal/gallery"
	"github.com/Kyz7/gallery/internal/server"
	"github.com/Kyz7/gallery/internal/storage"
	"github.com/Kyz7/gallery/internal/utils"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := utils.NewLogger(cfg.LogDev)
	if err != nil {
		log.Fatal("❌ Logger setup failed: ", err)
	}
	defer logger.Sync()

	if err := utils.ValidateJWTSecret(cfg.JWTSecret); err != nil {
		log.Fatal("❌ JWT Configuration Error: ", err)
	}
	utils.SetJWTSecret(cfg.JWTSecret)
	log.Println("✅ JWT secret validated")

	adminHash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatal("❌ Failed to hash admin password: ", err)
	}

	// ========== CATALOG STORE ==========
	slot, closeSlot, err := openSlot(cfg)
	if err != nil {
		log.Fatal("❌ Catalog store setup failed: ", err)
	}
	defer closeSlot()
	log.Printf("✅ Catalog store ready (%s, key %q)", cfg.StoreDriver, cfg.SlotKey)

	// ========== STORAGE SETUP ==========
	if err := utils.InitLocalStorage(); err != nil {
		log.Fatal("❌ Failed to initialize local storage:", err)
	}

	if cfg.UseS3 {
		if cfg.S3Bucket != "" && cfg.S3Region != "" {
			if err := utils.InitS3(cfg.S3Bucket, cfg.S3Region, cfg.CloudFrontURL); err != nil {
				log.Println("⚠️  S3 initialization failed:", err)
				log.Println("⚠️  Falling back to local storage")
				utils.SetStorageMode(true)
			} else {
				log.Printf("☁️  Using S3: %s (region: %s)", cfg.S3Bucket, cfg.S3Region)
			}
		} else {
			log.Println("⚠️  USE_S3=true but S3_BUCKET or S3_REGION not configured")
			log.Println("⚠️  Falling back to local storage")
			utils.SetStorageMode(true)
		}
	} else {
		log.Println("💾 Using LOCAL storage mode (./uploads/)")
		utils.SetStorageMode(true)
	}

	// ========== GALLERY SESSION ==========
	store := storage.NewSnapshotStore(slot, cfg.SlotKey)
	loadCtx, cancel := context.WithTimeout(context.Background(), cfg.StoreTimeout)
	session, err := gallery.Open(loadCtx, store,
		gallery.WithLogger(logger),
		gallery.WithPropertyID(cfg.PropertyID),
		gallery.WithCommitTimeout(cfg.StoreTimeout),
	)
	cancel()
	if err != nil {
		log.Fatal("❌ Failed to load gallery catalog:", err)
	}

	// ========== START SERVER ==========
	app := server.New(server.Wire(session, cfg, adminHash, logger))

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		log.Println("🛑 Shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := session.Flush(ctx); err != nil {
			logger.Error("final catalog flush failed", zap.Error(err))
		}
		_ = app.ShutdownWithContext(ctx)
	}()

	log.Printf("🚀 Gallery server starting on %s", cfg.ServerAddr)
	log.Printf("💾 Storage Mode: %s", utils.GetStorageMode())

	if err := app.Listen(cfg.ServerAddr); err != nil {
		log.Fatal("❌ Failed to start server:", err)
	}
}

// openSlot connects the key-value slot selected by STORE_DRIVER.
func openSlot(cfg *config.Config) (storage.Slot, func(), error) {
	switch cfg.StoreDriver {
	case "memory":
		log.Println("⚠️  STORE_DRIVER=memory: catalog changes are lost on restart")
		return storage.NewMemorySlot(), func() {}, nil
	case "redis":
		client, err := database.ConnectRedis(cfg)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewRedisSlot(client), func() { _ = client.Close() }, nil
	case "sqlite", "postgres":
		db, err := database.Connect(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("database connection failed: %w", err)
		}
		if err := database.Migrate(db); err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return storage.NewGormSlot(db), closeDB, nil
	default:
		return nil, nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}
