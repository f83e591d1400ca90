package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/order-intake-service/internal/config"
	handler "github.com/order-intake-service/internal/http"
	"github.com/order-intake-service/internal/logger"
	"github.com/order-intake-service/internal/repo"
	"github.com/order-intake-service/internal/report"
	"github.com/order-intake-service/internal/service"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer zl.Sync()

	orderRepo := repo.NewSQLiteOrderRepository(cfg.Storage.DatabasePath)
	if err := orderRepo.InitSchema(context.Background()); err != nil {
		zl.Fatal("failed to initialize orders table", zap.Error(err))
	}
	zl.Info("orders table ready", zap.String("path", cfg.Storage.DatabasePath))

	journal := repo.NewJSONFileJournal(cfg.Storage.JournalPath)
	reporter := report.NewConsole(os.Stdout)
	orderService := service.NewOrderService(orderRepo, journal, reporter)
	h := handler.NewHandler(orderService)

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(logger.Middleware(zl))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h.RegisterRoutes(r)

	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: r,
	}

	go func() {
		zl.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Fatal("server forced to shutdown", zap.Error(err))
	}

	zl.Info("server exiting")
}
