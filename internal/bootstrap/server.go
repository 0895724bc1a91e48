package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// ServerConfigFromEnv membaca PORT dan HTTP_*_TIMEOUT (format time.Duration).
// Nilai kosong atau tidak valid jatuh ke default.
func ServerConfigFromEnv() ServerConfig {
	return ServerConfig{
		Port:            envOr("PORT", "3000"),
		ReadTimeout:     envDuration("HTTP_READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    envDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:     envDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: envDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// StartHTTPServer menjalankan Gin sampai SIGINT/SIGTERM lalu shutdown
// dengan batas waktu ShutdownTimeout.
func StartHTTPServer(router *gin.Engine, cfg ServerConfig, auditLogger AuditLogger) {
	logger := zap.L().Named("http")
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	auditLogger.Log(context.Background(), AuditLog{
		Action:  "SERVER_START",
		Message: "HTTP server started",
		Meta:    map[string]any{"port": cfg.Port},
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	auditLogger.Log(context.Background(), AuditLog{
		Action:  "SERVER_SHUTDOWN",
		Message: "HTTP server shutting down",
		Meta:    map[string]any{"signal": sig.String()},
	})

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
		return
	}
	logger.Info("http server stopped")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
