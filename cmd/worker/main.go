package main

import (
	"os"

	"github.com/connectwithhassan/all-in-one/internal/app"
	"github.com/connectwithhassan/all-in-one/internal/bootstrap"
	"github.com/connectwithhassan/all-in-one/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger := bootstrap.MustInitLogger(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"), "worker")
	defer logger.Sync()

	apperror.Init()

	if err := app.RunWorker(); err != nil {
		logger.Fatal("worker stopped", zap.Error(err))
	}
}
