package middleware

import (
	"net/http"

	"github.com/connectwithhassan/all-in-one/internal/rbac"
	"github.com/connectwithhassan/all-in-one/internal/shared/apperror"
	"github.com/connectwithhassan/all-in-one/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type ContextKey string

// Key gin.Context yang diisi Authenticate dan ExtractUserID.
const (
	ContextUserID          ContextKey = "user_id"
	ContextValidatedUserID ContextKey = "user_id_validated"
	ContextEmployeeID      ContextKey = "employee_id"
	ContextRole            ContextKey = "role"
	ContextCompanyID       ContextKey = "company_id"
)

// RBACService cukup punya Enforce; rbac.Service dan fake test sama-sama bisa.
type RBACService interface {
	Enforce(req rbac.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(string(ContextRole))
		companyID := c.GetString(string(ContextCompanyID))
		if role == "" || companyID == "" {
			abortWith(c, apperror.ErrUnauthorized)
			return
		}

		allowed, err := service.Enforce(rbac.EnforceRequest{
			Role:      role,
			CompanyID: companyID,
			Resource:  resource,
			Action:    action,
		})
		if err != nil {
			abortWith(c, apperror.ErrInternal)
			return
		}
		if !allowed {
			response.Error(c, http.StatusForbidden, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message, resource+":"+action)
			c.Abort()
			return
		}
		c.Next()
	}
}
