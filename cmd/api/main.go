package main

import (
	"os"

	"github.com/connectwithhassan/all-in-one/internal/app"
	"github.com/connectwithhassan/all-in-one/internal/bootstrap"
	"github.com/connectwithhassan/all-in-one/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger := bootstrap.MustInitLogger(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"), "api")
	defer logger.Sync()

	apperror.Init()
	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	if err := app.BuildApp(r); err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	bootstrap.StartHTTPServer(r, bootstrap.ServerConfigFromEnv(), bootstrap.NewStdoutAuditLogger(logger))
}
