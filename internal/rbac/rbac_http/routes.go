package rbac_http

import (
	"github.com/connectwithhassan/all-in-one/internal/middleware"
	"github.com/connectwithhassan/all-in-one/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *rbac.Handler, service rbac.Service) {
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware())
	{
		group.GET("/permissions/me", handler.MyPermissions)
		group.POST("/enforce", middleware.RBACAuthorize(service, "role", "read"), handler.Enforce)
		group.POST("/reload", middleware.RBACAuthorize(service, "role", "manage"), handler.Reload)
	}
}
