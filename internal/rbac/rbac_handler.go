package rbac

import (
	"net/http"
	"strings"

	"github.com/connectwithhassan/all-in-one/internal/shared/apperror"
	"github.com/connectwithhassan/all-in-one/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Enforce(c *gin.Context) {
	var req EnforceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	req.Role = strings.TrimSpace(req.Role)
	req.CompanyID = strings.TrimSpace(req.CompanyID)
	req.Resource = strings.TrimSpace(req.Resource)
	req.Action = strings.TrimSpace(req.Action)

	if req.Role == "" || req.CompanyID == "" || req.Resource == "" || req.Action == "" {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "role, company_id, resource, and action are required", nil)
		return
	}

	allowed, err := h.service.Enforce(req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred", nil)
		return
	}

	response.Success(c, http.StatusOK, EnforceResponse{Allowed: allowed}, nil)
}

// MyPermissions lists what the caller's role may do in its own company.
func (h *Handler) MyPermissions(c *gin.Context) {
	perms, err := h.service.Permissions(c.GetString("role"), c.GetString("company_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred", nil)
		return
	}

	response.Success(c, http.StatusOK, perms, nil)
}

func (h *Handler) Reload(c *gin.Context) {
	if err := h.service.Reload(); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred", nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reloaded": true}, nil)
}
