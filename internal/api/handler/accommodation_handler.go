package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/blakejoy/saccom-app/internal/dto"
	"github.com/blakejoy/saccom-app/internal/service"
	"github.com/blakejoy/saccom-app/pkg/response"
)

// AccommodationHandler 支持措施模块 HTTP 处理器
type AccommodationHandler struct {
	accommodationSvc service.AccommodationService
}

// NewAccommodationHandler 创建 AccommodationHandler
func NewAccommodationHandler(accommodationSvc service.AccommodationService) *AccommodationHandler {
	return &AccommodationHandler{accommodationSvc: accommodationSvc}
}

// ListAccommodations 获取措施目录
// GET /api/v1/accommodations?include_inactive=true
func (h *AccommodationHandler) ListAccommodations(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	accommodations, err := h.accommodationSvc.List(c.Request.Context(), includeInactive)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": accommodations})
}

// GetAccommodation 获取措施详情
// GET /api/v1/accommodations/:id
func (h *AccommodationHandler) GetAccommodation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	accommodation, err := h.accommodationSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleAccommodationError(c, err)
		return
	}

	response.OK(c, accommodation)
}

// CreateAccommodation 创建措施
// POST /api/v1/accommodations
func (h *AccommodationHandler) CreateAccommodation(c *gin.Context) {
	var req dto.CreateAccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	accommodation, err := h.accommodationSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleAccommodationError(c, err)
		return
	}

	response.Created(c, accommodation)
}

// UpdateAccommodation 更新措施
// PUT /api/v1/accommodations/:id
func (h *AccommodationHandler) UpdateAccommodation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateAccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	accommodation, err := h.accommodationSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleAccommodationError(c, err)
		return
	}

	response.OK(c, accommodation)
}

// DeactivateAccommodation 停用措施（新表单/模板不再可选）
// PUT /api/v1/accommodations/:id/deactivate
func (h *AccommodationHandler) DeactivateAccommodation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.accommodationSvc.Deactivate(c.Request.Context(), id); err != nil {
		h.handleAccommodationError(c, err)
		return
	}

	response.OK(c, nil)
}

// ActivateAccommodation 重新启用措施
// PUT /api/v1/accommodations/:id/activate
func (h *AccommodationHandler) ActivateAccommodation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.accommodationSvc.Activate(c.Request.Context(), id); err != nil {
		h.handleAccommodationError(c, err)
		return
	}

	response.OK(c, nil)
}

// DeleteAccommodation 硬删除措施
// DELETE /api/v1/accommodations/:id
func (h *AccommodationHandler) DeleteAccommodation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.accommodationSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleAccommodationError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleAccommodationError 统一处理措施模块业务错误
func (h *AccommodationHandler) handleAccommodationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAccommodationNotFound):
		response.NotFound(c, 12001, "支持措施不存在")
	case errors.Is(err, service.ErrAccommodationNameExists):
		response.Conflict(c, 12002, "措施名称已存在")
	default:
		response.InternalError(c)
	}
}
