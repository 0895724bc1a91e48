package app

import (
	"errors"

	"github.com/connectwithhassan/all-in-one/internal/messaging/kafka"
	"github.com/connectwithhassan/all-in-one/internal/messaging/kafka/producer"
	"github.com/connectwithhassan/all-in-one/internal/shared/connection"

	"go.uber.org/zap"
)

var errKafkaBrokerMissing = errors.New("KAFKA_BROKER is required")

// RunWorker memindahkan baris outbox ke Kafka sampai proses dihentikan.
func RunWorker() error {
	logger := zap.L().Named("app.worker")
	cfg := loadConfig()
	if cfg.KafkaBroker == "" {
		return errKafkaBrokerMissing
	}

	_, sqlDB, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	writer, err := connection.ConnectKafkaWriter(cfg.KafkaBroker, connection.DefaultRetry)
	if err != nil {
		return err
	}
	defer writer.Close()

	ctx, stop := signalContext()
	defer stop()

	producer.ProcessOutboxEvents(ctx, kafka.NewOutboxRepository(sqlDB), writer, logger, cfg.OutboxPollInterval)
	return nil
}
