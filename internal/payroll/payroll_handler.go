package payroll

import (
	"net/http"
	"strconv"

	"github.com/connectwithhassan/all-in-one/internal/middleware"
	"github.com/connectwithhassan/all-in-one/internal/shared/apperror"
	"github.com/connectwithhassan/all-in-one/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func getActorID(c *gin.Context) string {
	if id := c.GetString(string(middleware.ContextValidatedUserID)); id != "" {
		return id
	}
	return c.GetString(string(middleware.ContextUserID))
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Generate runs a generation synchronously. When the request passed through
// the idempotency middleware the result is cached under its key.
func (h *Handler) Generate(c *gin.Context) {
	if h.rdb != nil {
		defer middleware.ReleaseIdempotencyLock(c, h.rdb)
	}

	var req GeneratePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	resp, err := h.service.Generate(c.Request.Context(), c.GetString("company_id"), getActorID(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		middleware.StoreIdempotentResult(c, h.rdb, resp)
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) RequestGeneration(c *gin.Context) {
	var req GeneratePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	resp, err := h.service.RequestGeneration(c.Request.Context(), c.GetString("company_id"), getActorID(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusAccepted, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()
	companyID := c.GetString("company_id")
	var filterReq GetPayrollsFilterRequest
	if err := c.ShouldBindQuery(&filterReq); err != nil {
		response.ValidationError(c, err)
		return
	}

	resp, err := h.service.GetAll(ctx, companyID, filterReq)
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

func (h *Handler) Update(c *gin.Context) {
	var req UpdatePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.GetString("company_id"), c.Param("id"), req)
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

func (h *Handler) DeleteAll(c *gin.Context) {
	var filterReq GetPayrollsFilterRequest
	if err := c.ShouldBindQuery(&filterReq); err != nil {
		response.ValidationError(c, err)
		return
	}

	resp, err := h.service.DeleteAll(c.Request.Context(), c.GetString("company_id"), filterReq)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ExportCSV(c *gin.Context) {
	var filterReq GetPayrollsFilterRequest
	if err := c.ShouldBindQuery(&filterReq); err != nil {
		response.ValidationError(c, err)
		return
	}

	content, err := h.service.ExportCSV(c.Request.Context(), c.GetString("company_id"), filterReq)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	filename := "payrolls.csv"
	if filterReq.Month != "" {
		filename = "payrolls_" + filterReq.Month + ".csv"
	}
	response.Attachment(c, filename, "text/csv; charset=utf-8", content)
}

func (h *Handler) GetPayslip(c *gin.Context) {
	file, err := h.service.GetPayslip(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Attachment(c, file.Filename, "application/pdf", file.Content)
}
