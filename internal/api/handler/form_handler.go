package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/blakejoy/saccom-app/internal/dto"
	"github.com/blakejoy/saccom-app/internal/service"
	"github.com/blakejoy/saccom-app/pkg/response"
)

// FormHandler 周表单模块 HTTP 处理器
type FormHandler struct {
	formSvc service.FormService
}

// NewFormHandler 创建 FormHandler
func NewFormHandler(formSvc service.FormService) *FormHandler {
	return &FormHandler{formSvc: formSvc}
}

// ListStudentForms 获取学生的表单列表（按年份、周次升序）
// GET /api/v1/students/:id/forms
func (h *FormHandler) ListStudentForms(c *gin.Context) {
	studentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	forms, err := h.formSvc.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": forms})
}

// GetForm 获取表单详情（措施关联与跟踪网格）
// GET /api/v1/forms/:id
func (h *FormHandler) GetForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	form, err := h.formSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleFormError(c, err)
		return
	}

	response.OK(c, form)
}

// CreateForm 创建周表单（含措施关联与初始跟踪网格，整体原子）
// POST /api/v1/forms
func (h *FormHandler) CreateForm(c *gin.Context) {
	var req dto.CreateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	form, err := h.formSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleFormError(c, err)
		return
	}

	response.Created(c, form)
}

// DuplicateForm 复制表单到下一周
// POST /api/v1/forms/:id/duplicate
func (h *FormHandler) DuplicateForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	form, err := h.formSvc.Duplicate(c.Request.Context(), id)
	if err != nil {
		h.handleFormError(c, err)
		return
	}

	response.Created(c, form)
}

// DeleteForm 删除表单（幂等）
// DELETE /api/v1/forms/:id
func (h *FormHandler) DeleteForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.formSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleFormError(c, err)
		return
	}

	response.OK(c, nil)
}

// AddFormAccommodation 向表单增量添加措施
// POST /api/v1/forms/:id/accommodations
func (h *FormHandler) AddFormAccommodation(c *gin.Context) {
	formID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AddFormAccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	link, err := h.formSvc.AddAccommodation(c.Request.Context(), formID, &req)
	if err != nil {
		h.handleFormError(c, err)
		return
	}

	response.Created(c, link)
}

// RemoveFormAccommodation 移除表单措施关联
// DELETE /api/v1/form-accommodations/:id
func (h *FormHandler) RemoveFormAccommodation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.formSvc.RemoveAccommodation(c.Request.Context(), id); err != nil {
		h.handleFormError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleFormError 统一处理表单模块业务错误
func (h *FormHandler) handleFormError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrFormNotFound):
		response.NotFound(c, 14001, "表单不存在")
	case errors.Is(err, service.ErrFormYearOutOfRange):
		response.BadRequest(c, 14002, "年份超出支持范围")
	case errors.Is(err, service.ErrFormWeekOutOfRange):
		response.BadRequest(c, 14003, "周次超出该年份的 ISO 周数")
	case errors.Is(err, service.ErrFormStartDateMismatch):
		response.BadRequest(c, 14004, "起始日期与周次/年份不一致")
	case errors.Is(err, service.ErrFormIsSas):
		response.Conflict(c, 14007, "SAS 表单不允许关联单项措施")
	case errors.Is(err, service.ErrFormAccommodationExists):
		response.Conflict(c, 14005, "该措施已关联到此表单")
	case errors.Is(err, service.ErrFormAccommodationNotFound):
		response.NotFound(c, 14006, "表单措施关联不存在")
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 11001, "学生不存在")
	case errors.Is(err, service.ErrTemplateNotFound):
		response.NotFound(c, 13001, "模板不存在")
	case errors.Is(err, service.ErrAccommodationNotFound):
		response.NotFound(c, 12001, "支持措施不存在")
	default:
		response.InternalError(c)
	}
}
