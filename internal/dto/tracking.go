package dto

// ── 每日跟踪模块 DTO ──

// UpdateTrackingRequest 更新单元格状态请求
// Version 非空时启用乐观并发检查（版本过期返回冲突）
type UpdateTrackingRequest struct {
	Status  string  `json:"status"  binding:"required,oneof=accepted rejected n/a"`
	Notes   *string `json:"notes"   binding:"omitempty,max=2000"`
	Version *int    `json:"version" binding:"omitempty,min=1"`
}

// TrackingResponse 跟踪行响应
type TrackingResponse struct {
	ID                  uint    `json:"id"`
	FormAccommodationID uint    `json:"form_accommodation_id"`
	DayOfWeek           int     `json:"day_of_week"`
	DayName             string  `json:"day_name"`
	Status              string  `json:"status"`
	Notes               *string `json:"notes,omitempty"`
	Version             int     `json:"version"`
	UpdatedAt           string  `json:"updated_at"`
}
