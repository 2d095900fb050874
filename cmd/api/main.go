package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"superheroes/internal/core/auth"
	"superheroes/internal/core/config"
	"superheroes/internal/core/database"
	"superheroes/internal/core/logger"
	"superheroes/internal/core/server"
	"superheroes/internal/repo"
	"superheroes/internal/service"
	"superheroes/internal/transport/http/handler"
	mdw "superheroes/internal/transport/http/middleware"
	"superheroes/internal/transport/http/router"
)

// @title           Superheroes API
// @version         1.0
// @description     CRUD service for superheroes with paging, sorting and name search.

// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer {token}; only required when auth.enabled

func main() {
	_ = godotenv.Load()
	cfg := config.MustLoad("")
	log, cleanup := logger.New(logger.Options{
		Level: cfg.Log.Level,
		JSON:  cfg.Log.JSON,
		Rotate: logger.FileRotate{
			Filename:   cfg.Log.File.Filename,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	defer cleanup()
	undo := logger.RedirectStdLog(log, zapcore.InfoLevel)
	defer undo()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("superheroes api FAILED", zap.Error(err))
		cleanup()
		os.Exit(1)
	}
	log.Info("superheroes api stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	db, err := openDB(cfg, log)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	heroRepo := repo.NewHeroRepo(db)
	if cfg.DB.AutoMigrate {
		if err := heroRepo.Migrate(ctx); err != nil {
			return err
		}
		log.Info("automigrate done")
	}

	var guards []gin.HandlerFunc
	if cfg.Auth.Enabled {
		jwter := auth.NewJWTer(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TTL())
		guards = append(guards, mdw.AuthJWT(jwter, auth.RoleAdmin))
		log.Info("write endpoints require admin token")
	}

	heroSvc := service.NewHeroService(heroRepo, log.Named("hero"))
	heroH := handler.NewHeroHandler(heroSvc, guards...)

	mode := gin.DebugMode
	if cfg.Log.JSON {
		mode = gin.ReleaseMode
	}
	r := router.NewAPIEngine(log, router.Options{
		Mode:        mode,
		CORSOrigins: cfg.App.CORSOrigins,
		Swagger:     cfg.App.Swagger,
		Limits:      cfg.Limits,
		Ping:        func(c *gin.Context) error { return sqlDB.PingContext(c.Request.Context()) },
	}, heroH)

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("superheroes api starting",
		zap.String("addr", addr),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+router.APIPrefix),
		zap.Bool("swagger", cfg.App.Swagger),
	)

	return server.Run(ctx, srv, log, time.Duration(cfg.App.HTTP.ShutdownTimeoutSec)*time.Second)
}

func openDB(cfg *config.Config, l *zap.Logger) (*gorm.DB, error) {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
		Logger:             l,
	})
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}
	return db, nil
}
