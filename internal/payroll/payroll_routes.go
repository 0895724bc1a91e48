package payroll

import (
	"github.com/connectwithhassan/all-in-one/internal/middleware"
	"github.com/connectwithhassan/all-in-one/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	// idempotency dicek setelah RBAC supaya request yang ditolak tidak memegang lock
	generate := []gin.HandlerFunc{
		middleware.RateLimitByUser(rate.Limit(1), 3),
		middleware.RBACAuthorize(rbacService, "payroll", "create"),
	}
	if redisClient != nil {
		generate = append(generate, middleware.Idempotency(redisClient))
	}
	generate = append(generate, handler.Generate)

	payrolls := r.Group("/payrolls")
	payrolls.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		payrolls.GET("", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetAll)
		payrolls.GET("/export", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.ExportCSV)
		payrolls.GET("/:id", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetByID)
		payrolls.GET("/:id/payslip", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetPayslip)
		payrolls.POST("/generate", generate...)
		payrolls.POST("/generate/async", middleware.RBACAuthorize(rbacService, "payroll", "create"), handler.RequestGeneration)
		payrolls.PUT("/:id", middleware.RBACAuthorize(rbacService, "payroll", "update"), handler.Update)
		payrolls.DELETE("/:id", middleware.RBACAuthorize(rbacService, "payroll", "delete"), handler.Delete)
		payrolls.DELETE("", middleware.RBACAuthorize(rbacService, "payroll", "delete"), handler.DeleteAll)
	}
}
