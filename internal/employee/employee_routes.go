package employee

import (
	"github.com/connectwithhassan/all-in-one/internal/middleware"
	"github.com/connectwithhassan/all-in-one/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRoutes membuka direktori karyawan read-only. Options dipakai form
// generate payroll untuk memilih karyawan libur Sabtu.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, logger *zap.Logger) {
	canRead := middleware.RBACAuthorize(rbacService, "employee", "read")

	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware(), middleware.ExtractUserID(), middleware.ContextLogger(logger))
	{
		employees.GET("", middleware.RateLimitByUser(3, 10), canRead, handler.GetAll)
		employees.GET("/options", middleware.RateLimitByUser(5, 20), canRead, handler.GetOptions)
		employees.GET("/:id", middleware.RateLimitByUser(3, 10), canRead, handler.GetByID)
		employees.DELETE("/options/cache",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "role", "manage"),
			handler.InvalidateOptions,
		)
	}
}
