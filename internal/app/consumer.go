package app

import (
	"github.com/connectwithhassan/all-in-one/internal/attendance"
	"github.com/connectwithhassan/all-in-one/internal/events"
	"github.com/connectwithhassan/all-in-one/internal/messaging/kafka"
	"github.com/connectwithhassan/all-in-one/internal/messaging/kafka/consumer"
	"github.com/connectwithhassan/all-in-one/internal/payroll"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer menjalankan generate payroll dari antrean Kafka.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")
	cfg := loadConfig()
	if cfg.KafkaBroker == "" {
		return errKafkaBrokerMissing
	}

	gormDB, sqlDB, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	attendanceService := attendance.NewService(sqlDB, attendance.NewRepository(gormDB), cfg.AttendanceHeaderRows, logger)
	payrollService := payroll.NewServiceWithOutbox(
		sqlDB,
		payroll.NewRepository(gormDB),
		attendanceService,
		kafka.NewOutboxRepository(sqlDB),
		logger,
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{cfg.KafkaBroker},
		Topic:       events.PayrollGenerationRequestedTopic,
		GroupID:     consumer.PayrollGenerationGroupID,
		StartOffset: kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, stop := signalContext()
	defer stop()

	consumer.ConsumePayrollGenerationRequested(ctx, reader, payrollService, logger)
	return nil
}
