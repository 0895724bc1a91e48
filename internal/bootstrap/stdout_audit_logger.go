package bootstrap

import (
	"context"
	"time"

	"github.com/connectwithhassan/all-in-one/internal/shared/contextutil"

	"go.uber.org/zap"
)

// StdoutAuditLogger menulis audit sebagai log zap bernama "audit".
type StdoutAuditLogger struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewStdoutAuditLogger(logger *zap.Logger) *StdoutAuditLogger {
	if logger == nil {
		logger = zap.L()
	}
	return &StdoutAuditLogger{logger: logger.Named("audit"), now: time.Now}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	fields := append(contextutil.Fields(ctx),
		zap.String("timestamp", l.now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
	l.logger.Info("audit event", fields...)
}
