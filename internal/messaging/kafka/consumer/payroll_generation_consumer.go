package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/connectwithhassan/all-in-one/internal/events"
	"github.com/connectwithhassan/all-in-one/internal/payroll"
	"github.com/connectwithhassan/all-in-one/internal/shared/apperror"
	"github.com/connectwithhassan/all-in-one/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const PayrollGenerationGroupID = "payroll-generation"

// MessageReader is the subset of *kafkago.Reader the consumers rely on.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// RetryBackoff bounds the wait between attempts on a message that failed
// transiently. The wait doubles from Initial up to Max.
type RetryBackoff struct {
	Initial time.Duration
	Max     time.Duration
}

var DefaultRetryBackoff = RetryBackoff{Initial: time.Second, Max: 30 * time.Second}

func (b RetryBackoff) next(d time.Duration) time.Duration {
	if d <= 0 {
		d = b.Initial
	} else {
		d *= 2
	}
	if b.Max > 0 && d > b.Max {
		d = b.Max
	}
	return d
}

// ConsumePayrollGenerationRequested runs queued generations with
// DefaultRetryBackoff.
func ConsumePayrollGenerationRequested(
	ctx context.Context,
	reader MessageReader,
	payrollService payroll.Service,
	logger *zap.Logger,
) {
	ConsumePayrollGenerationRequestedWithBackoff(ctx, reader, payrollService, DefaultRetryBackoff, logger)
}

// ConsumePayrollGenerationRequestedWithBackoff runs queued generations.
// Requests the service rejects as invalid are committed and dropped. Any other
// failure is retried on the same message until it succeeds, turns permanent or
// ctx ends; the offset only moves past a message once it is settled.
func ConsumePayrollGenerationRequestedWithBackoff(
	ctx context.Context,
	reader MessageReader,
	payrollService payroll.Service,
	backoff RetryBackoff,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_generation")
	log.Info("payroll generation consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll generation consumer stopped")
				return
			}
			log.Error("fetch payroll generation message failed", zap.Error(err))
			continue
		}

		var event events.PayrollGenerationRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payroll generation event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if !handleGeneration(ctx, reader, payrollService, backoff, log, msg, event) {
			log.Info("payroll generation consumer stopped",
				zap.String("request_id", event.RequestID),
				zap.Int64("offset", msg.Offset),
			)
			return
		}
	}
}

// handleGeneration settles one message. It returns false when ctx ended
// before the message could be committed.
func handleGeneration(
	ctx context.Context,
	reader MessageReader,
	payrollService payroll.Service,
	backoff RetryBackoff,
	log *zap.Logger,
	msg kafkago.Message,
	event events.PayrollGenerationRequestedEvent,
) bool {
	reqCtx := contextutil.WithCompanyID(contextutil.WithRequestID(ctx, event.RequestID), event.CompanyID)
	req := payroll.GeneratePayrollRequest{
		ExportID:               event.ExportID,
		Month:                  event.Month,
		SaturdayOffEmployeeIDs: event.SaturdayOffEmployeeIDs,
		OfficialLeaves:         event.OfficialLeaves,
		AllowedHoursPerDay:     event.AllowedHoursPerDay,
		EmployeeCode:           event.EmployeeCode,
	}

	var wait time.Duration
	for attempt := 1; ; attempt++ {
		resp, err := payrollService.Generate(reqCtx, event.CompanyID, event.RequestedBy, req)
		if err == nil {
			if err := reader.CommitMessages(ctx, msg); err != nil {
				log.Error("commit payroll generation message failed", zap.Error(err))
			}
			log.Info("payroll generation completed",
				zap.String("request_id", event.RequestID),
				zap.String("company_id", event.CompanyID),
				zap.String("month", resp.Month),
				zap.Int("generated", len(resp.Generated)),
				zap.Int("skipped", len(resp.Skipped)),
			)
			return true
		}

		if isPermanentFailure(err) {
			log.Warn("payroll generation rejected, skipping",
				zap.String("request_id", event.RequestID),
				zap.String("company_id", event.CompanyID),
				zap.String("export_id", event.ExportID),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			return true
		}

		wait = backoff.next(wait)
		log.Error("payroll generation failed, retrying",
			zap.String("request_id", event.RequestID),
			zap.String("company_id", event.CompanyID),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", wait),
			zap.Error(err),
		)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}
	}
}

// isPermanentFailure reports client errors, which a retry cannot fix. A
// conflict on the employee/month key is retried since the next attempt
// updates the row in place.
func isPermanentFailure(err error) bool {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		return false
	}
	if appErr.HTTPStatus == http.StatusConflict {
		return false
	}
	return appErr.HTTPStatus >= http.StatusBadRequest && appErr.HTTPStatus < http.StatusInternalServerError
}
