package middleware

import (
	"github.com/connectwithhassan/all-in-one/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader  = "X-Request-ID"
	contextRequestID = "request_id"

	maxRequestIDLength = 64
)

// RequestID menerima X-Request-ID dari client bila wajar, selain itu
// membuat UUID baru. Nilainya dikirim balik di response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := requestID(c)

		c.Set(contextRequestID, rid)
		c.Request = c.Request.WithContext(contextutil.WithRequestID(c.Request.Context(), rid))
		c.Header(RequestIDHeader, rid)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	if rid := c.GetString(contextRequestID); rid != "" {
		return rid
	}
	rid := c.GetHeader(RequestIDHeader)
	if rid == "" || len(rid) > maxRequestIDLength {
		return uuid.NewString()
	}
	return rid
}
