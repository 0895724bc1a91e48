package kafka

import (
	"context"
	"database/sql"
	"time"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"

	maxErrorMessageLength = 500
)

// OutboxEvent adalah satu baris outbox_events. Payload sudah berupa JSON.
type OutboxEvent struct {
	ID            string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
	Status        string
	RetryCount    int
	NextRetryAt   time.Time
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock

type OutboxRepository interface {
	WithTx(tx *sql.Tx) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
	PurgeSent(ctx context.Context, olderThan time.Duration) (int64, error)
}

type sqlExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type outboxRepository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewOutboxRepository(db *sql.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

func (r *outboxRepository) WithTx(tx *sql.Tx) OutboxRepository {
	return &outboxRepository{db: r.db, tx: tx}
}

func (r *outboxRepository) conn() sqlExecutor {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

const insertOutboxEvent = `
INSERT INTO outbox_events (id, request_id, aggregate_type, aggregate_id, event_type, topic, payload, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// Create hanya menulis baris; publish dilakukan worker setelah tx commit.
func (r *outboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	if err := ValidateOutboxEvent(event); err != nil {
		return err
	}
	_, err := r.conn().ExecContext(ctx, insertOutboxEvent,
		event.ID, event.RequestID, event.AggregateType, event.AggregateID,
		event.EventType, event.Topic, event.Payload, event.Status,
	)
	return err
}

// Baris failed ikut diambil lagi setelah next_retry_at lewat.
const selectPendingOutbox = `
SELECT id::text, COALESCE(request_id, ''), aggregate_type, aggregate_id::text,
	event_type, topic, payload, status, retry_count, COALESCE(next_retry_at, created_at)
FROM outbox_events
WHERE status IN ($1, $2)
	AND (next_retry_at IS NULL OR next_retry_at <= NOW())
ORDER BY created_at
LIMIT $3`

func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	rows, err := r.conn().QueryContext(ctx, selectPendingOutbox, OutboxStatusPending, OutboxStatusFailed, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]OutboxEvent, 0, limit)
	for rows.Next() {
		e, err := scanOutboxEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func scanOutboxEvent(rows *sql.Rows) (OutboxEvent, error) {
	var e OutboxEvent
	err := rows.Scan(
		&e.ID, &e.RequestID, &e.AggregateType, &e.AggregateID,
		&e.EventType, &e.Topic, &e.Payload, &e.Status, &e.RetryCount, &e.NextRetryAt,
	)
	return e, err
}

const markOutboxSent = `
UPDATE outbox_events
SET status = $2, processed_at = NOW(), error_message = NULL, updated_at = NOW()
WHERE id = $1`

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	_, err := r.conn().ExecContext(ctx, markOutboxSent, id, OutboxStatusSent)
	return err
}

// Backoff linear 15 detik per percobaan, maksimal 150 detik.
const markOutboxFailed = `
UPDATE outbox_events
SET status = $2,
	retry_count = retry_count + 1,
	error_message = $3,
	next_retry_at = NOW() + (LEAST(retry_count + 1, 10) * INTERVAL '15 seconds'),
	updated_at = NOW()
WHERE id = $1`

func (r *outboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	if len(reason) > maxErrorMessageLength {
		reason = reason[:maxErrorMessageLength]
	}
	_, err := r.conn().ExecContext(ctx, markOutboxFailed, id, OutboxStatusFailed, reason)
	return err
}

const purgeSentOutbox = `
DELETE FROM outbox_events
WHERE status = $1
	AND processed_at < NOW() - ($2 * INTERVAL '1 second')`

// PurgeSent deletes rows published more than olderThan ago. Failed and
// pending rows are never purged.
func (r *outboxRepository) PurgeSent(ctx context.Context, olderThan time.Duration) (int64, error) {
	res, err := r.conn().ExecContext(ctx, purgeSentOutbox, OutboxStatusSent, int64(olderThan/time.Second))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
