package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/acquira/payment-gateway/internal/application/services"
	"github.com/acquira/payment-gateway/internal/config"
	"github.com/acquira/payment-gateway/internal/domain"
	"github.com/acquira/payment-gateway/internal/infrastructure/acquirer"
	"github.com/acquira/payment-gateway/internal/infrastructure/memstore"
	"github.com/acquira/payment-gateway/internal/interfaces/rest"
	"github.com/acquira/payment-gateway/internal/interfaces/rest/middleware"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting gateway service",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"acquirer_url", cfg.Acquirer.BaseURL,
	)

	store := memstore.NewStore()
	bankClient := acquirer.NewBankClient(cfg.Acquirer, logger)
	paymentService := services.NewPaymentService(domain.NewValidator(), bankClient, store, logger)

	h := rest.NewHandlers(paymentService, logger)
	router := rest.NewRouter(h)

	handler := middleware.Recovery(logger)(router)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.ReadTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
