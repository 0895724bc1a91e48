package middleware

import (
	"github.com/connectwithhassan/all-in-one/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger menempelkan logger ber-metadata ke context request supaya
// service bisa mengambilnya lewat contextutil tanpa bergantung ke gin.
// Dipasang setelah AuthMiddleware agar company dan user sudah terisi.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := requestID(c)
		c.Set(contextRequestID, rid)
		c.Header(RequestIDHeader, rid)

		uid := actorID(c)
		companyID := c.GetString(string(ContextCompanyID))

		ctx := contextutil.WithRequestID(c.Request.Context(), rid)
		ctx = contextutil.WithUserID(ctx, uid)
		if companyID != "" {
			ctx = contextutil.WithCompanyID(ctx, companyID)
		}
		ctx = contextutil.WithLogger(ctx, logger.With(contextutil.Fields(ctx)...))

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
