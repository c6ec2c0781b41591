package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/blakejoy/saccom-app/internal/dto"
	"github.com/blakejoy/saccom-app/internal/service"
	"github.com/blakejoy/saccom-app/pkg/response"
)

// TrackingHandler 每日跟踪模块 HTTP 处理器
type TrackingHandler struct {
	trackingSvc service.TrackingService
}

// NewTrackingHandler 创建 TrackingHandler
func NewTrackingHandler(trackingSvc service.TrackingService) *TrackingHandler {
	return &TrackingHandler{trackingSvc: trackingSvc}
}

// GetTracking 获取单元格状态
// GET /api/v1/tracking/:id
func (h *TrackingHandler) GetTracking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tracking, err := h.trackingSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleTrackingError(c, err)
		return
	}

	response.OK(c, tracking)
}

// UpdateTracking 更新单元格状态与备注
// PUT /api/v1/tracking/:id
func (h *TrackingHandler) UpdateTracking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	tracking, err := h.trackingSvc.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		h.handleTrackingError(c, err)
		return
	}

	response.OK(c, tracking)
}

// handleTrackingError 统一处理跟踪模块业务错误
func (h *TrackingHandler) handleTrackingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTrackingNotFound):
		response.NotFound(c, 15001, "跟踪记录不存在")
	case errors.Is(err, service.ErrTrackingInvalidStatus):
		response.BadRequest(c, 15002, "无效的跟踪状态")
	case errors.Is(err, service.ErrTrackingConflict):
		response.Conflict(c, 15003, "记录已被其他操作修改，请刷新后重试")
	default:
		response.InternalError(c)
	}
}
