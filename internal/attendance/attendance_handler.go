package attendance

import (
	"net/http"
	"strconv"

	attendanceerrors "github.com/connectwithhassan/all-in-one/internal/attendance/errors"
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

func getActorID(c *gin.Context) string {
	actorID := c.GetString("user_id_validated")
	if actorID == "" {
		actorID = c.GetString("user_id")
	}
	return actorID
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Upload(c *gin.Context) {
	companyID := c.GetString("company_id")
	actorID := getActorID(c)

	header, err := c.FormFile("file")
	if err != nil {
		h.writeServiceError(c, attendanceerrors.ErrFileRequired)
		return
	}
	file, err := header.Open()
	if err != nil {
		h.writeServiceError(c, attendanceerrors.ErrUnreadableExport)
		return
	}
	defer file.Close()

	resp, err := h.service.Upload(c.Request.Context(), companyID, actorID, header.Filename, file)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	companyID := c.GetString("company_id")

	resp, err := h.service.GetAll(c.Request.Context(), companyID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	items, meta := response.Paginate(resp, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetSection(c *gin.Context) {
	var req GetSectionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	resp, err := h.service.GetSection(
		c.Request.Context(),
		c.GetString("company_id"),
		c.Param("id"),
		c.Param("employee_code"),
		req,
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.GetString("company_id"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
