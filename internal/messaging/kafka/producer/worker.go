package producer

import (
	"context"
	"time"

	"github.com/connectwithhassan/all-in-one/internal/messaging/kafka"

	"go.uber.org/zap"
)

const (
	batchSize = 50

	purgeInterval = time.Hour
	sentRetention = 7 * 24 * time.Hour
)

func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	purge := time.NewTicker(purgeInterval)
	defer purge.Stop()

	log.Info("outbox worker started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-ticker.C:
			if err := ProcessPendingEvents(ctx, repo, writer, log); err != nil {
				log.Error("process outbox events failed", zap.Error(err))
			}
		case <-purge.C:
			PurgeSentEvents(ctx, repo, sentRetention, log)
		}
	}
}

// ProcessPendingEvents publishes one batch of pending or retryable outbox
// rows. A failed publish is recorded on the row and does not stop the batch.
func ProcessPendingEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
) error {
	events, err := repo.ListPending(ctx, batchSize)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		return nil
	}

	logger.Info("processing pending outbox events", zap.Int("count", len(events)))

	for _, event := range events {
		if err := publishEvent(ctx, writer, event); err != nil {
			logger.Error("publish outbox event failed",
				zap.String("outbox_id", event.ID),
				zap.String("request_id", event.RequestID),
				zap.String("event_type", event.EventType),
				zap.String("topic", event.Topic),
				zap.Error(err),
			)
			_ = repo.MarkFailed(ctx, event.ID, err.Error())
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			logger.Error("mark outbox sent failed",
				zap.String("outbox_id", event.ID),
				zap.Error(err),
			)
			continue
		}

		logger.Info("outbox event sent",
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		)
	}

	return nil
}

// PurgeSentEvents trims published rows so the outbox table stays small.
func PurgeSentEvents(ctx context.Context, repo kafka.OutboxRepository, retention time.Duration, logger *zap.Logger) int64 {
	n, err := repo.PurgeSent(ctx, retention)
	if err != nil {
		logger.Warn("purge sent outbox events failed", zap.Error(err))
		return 0
	}
	if n > 0 {
		logger.Info("purged sent outbox events", zap.Int64("count", n), zap.Duration("retention", retention))
	}
	return n
}
