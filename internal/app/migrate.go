package app

import (
	"github.com/connectwithhassan/all-in-one/internal/attendance"
	"github.com/connectwithhassan/all-in-one/internal/employee"
	"github.com/connectwithhassan/all-in-one/internal/payroll"

	"gorm.io/gorm"
)

// The outbox is written with plain SQL, so its table is declared here
// instead of through a model.
const createOutboxTable = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id             uuid PRIMARY KEY,
	request_id     varchar(64),
	aggregate_type varchar(64) NOT NULL,
	aggregate_id   uuid NOT NULL,
	event_type     varchar(128) NOT NULL,
	topic          varchar(255) NOT NULL,
	payload        jsonb NOT NULL,
	status         varchar(16) NOT NULL DEFAULT 'pending',
	retry_count    int NOT NULL DEFAULT 0,
	next_retry_at  timestamptz,
	error_message  text,
	processed_at   timestamptz,
	created_at     timestamptz NOT NULL DEFAULT NOW(),
	updated_at     timestamptz NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_outbox_events_status_created ON outbox_events (status, created_at);
`

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&employee.Employee{},
		&attendance.Export{},
		&payroll.Payroll{},
	); err != nil {
		return err
	}
	return db.Exec(createOutboxTable).Error
}
