package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/blakejoy/saccom-app/internal/dto"
	"github.com/blakejoy/saccom-app/internal/service"
	"github.com/blakejoy/saccom-app/pkg/response"
)

// TemplateHandler 措施模板模块 HTTP 处理器
type TemplateHandler struct {
	templateSvc service.TemplateService
}

// NewTemplateHandler 创建 TemplateHandler
func NewTemplateHandler(templateSvc service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateSvc: templateSvc}
}

// ListStudentTemplates 获取学生的模板列表（默认模板优先）
// GET /api/v1/students/:id/templates
func (h *TemplateHandler) ListStudentTemplates(c *gin.Context) {
	studentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	templates, err := h.templateSvc.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": templates})
}

// GetTemplate 获取模板详情
// GET /api/v1/templates/:id
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	template, err := h.templateSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleTemplateError(c, err)
		return
	}

	response.OK(c, template)
}

// CreateTemplate 创建模板
// POST /api/v1/templates
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req dto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	template, err := h.templateSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleTemplateError(c, err)
		return
	}

	response.Created(c, template)
}

// SetDefaultTemplate 设为学生的默认模板
// PUT /api/v1/templates/:id/default
func (h *TemplateHandler) SetDefaultTemplate(c *gin.Context) {
	templateID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SetDefaultTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.templateSvc.SetDefault(c.Request.Context(), req.StudentID, templateID); err != nil {
		h.handleTemplateError(c, err)
		return
	}

	response.OK(c, nil)
}

// DeleteTemplate 删除模板（引用它的表单保留）
// DELETE /api/v1/templates/:id
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.templateSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleTemplateError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleTemplateError 统一处理模板模块业务错误
func (h *TemplateHandler) handleTemplateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTemplateNotFound):
		response.NotFound(c, 13001, "模板不存在")
	case errors.Is(err, service.ErrTemplateNoAccommodations):
		response.BadRequest(c, 13002, "模板必须至少包含一项支持措施")
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 11001, "学生不存在")
	case errors.Is(err, service.ErrAccommodationNotFound):
		response.NotFound(c, 12001, "支持措施不存在")
	default:
		response.InternalError(c)
	}
}
