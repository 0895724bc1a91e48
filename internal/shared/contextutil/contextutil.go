package contextutil

import (
	"context"

	"go.uber.org/zap"
)

// contextKey privat supaya tidak bentrok dengan key dari package lain.
type contextKey string

const (
	requestIDKey contextKey = "request_id"
	userIDKey    contextKey = "user_id"
	companyIDKey contextKey = "company_id"
	loggerKey    contextKey = "logger"
)

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	return stringValue(ctx, requestIDKey)
}

func WithUserID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, userIDKey, uid)
}

func GetUserID(ctx context.Context) string {
	return stringValue(ctx, userIDKey)
}

// WithCompanyID menyimpan tenant aktif. Consumer dan worker memakainya
// karena tidak punya gin.Context.
func WithCompanyID(ctx context.Context, companyID string) context.Context {
	return context.WithValue(ctx, companyIDKey, companyID)
}

func GetCompanyID(ctx context.Context) string {
	return stringValue(ctx, companyIDKey)
}

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger mengembalikan logger request, lalu fallback, lalu Nop.
// Hasilnya tidak pernah nil.
func GetLogger(ctx context.Context, fallback *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}
	if fallback != nil {
		return fallback
	}
	return zap.NewNop()
}

// Fields menyiapkan field tracing standar untuk log manual.
func Fields(ctx context.Context) []zap.Field {
	fields := []zap.Field{zap.String("request_id", GetRequestID(ctx))}
	if uid := GetUserID(ctx); uid != "" {
		fields = append(fields, zap.String("user_id", uid))
	}
	if cid := GetCompanyID(ctx); cid != "" {
		fields = append(fields, zap.String("company_id", cid))
	}
	return fields
}

func stringValue(ctx context.Context, key contextKey) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(key).(string)
	return v
}
