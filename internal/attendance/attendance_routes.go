package attendance

import (
	"github.com/connectwithhassan/all-in-one/internal/middleware"
	"github.com/connectwithhassan/all-in-one/internal/rbac"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	exports := r.Group("/attendance-exports")
	exports.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		exports.GET("", middleware.RBACAuthorize(rbacService, "attendance", "read"), h.GetAll)
		exports.GET("/:id", middleware.RBACAuthorize(rbacService, "attendance", "read"), h.GetByID)
		exports.GET("/:id/sections/:employee_code", middleware.RBACAuthorize(rbacService, "attendance", "read"), h.GetSection)
		exports.POST(
			"",
			middleware.RateLimitByUser(rate.Limit(1), 5),
			middleware.RBACAuthorize(rbacService, "attendance", "create"),
			h.Upload,
		)
		exports.DELETE("/:id", middleware.RBACAuthorize(rbacService, "attendance", "delete"), h.Delete)
	}
}
