package dto

// ── 支持措施模块 DTO ──

// CreateAccommodationRequest 创建措施请求
// SortOrder 省略时由服务端取 max+1
type CreateAccommodationRequest struct {
	Name      string  `json:"name"       binding:"required,min=1,max=255"`
	Category  *string `json:"category"   binding:"omitempty,max=100"`
	SortOrder *int    `json:"sort_order"`
}

// UpdateAccommodationRequest 更新措施请求（部分更新：名称/分类/排序）
type UpdateAccommodationRequest struct {
	Name      *string `json:"name"       binding:"omitempty,min=1,max=255"`
	Category  *string `json:"category"   binding:"omitempty,max=100"`
	SortOrder *int    `json:"sort_order"`
}

// AccommodationResponse 措施信息响应
type AccommodationResponse struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Category  *string `json:"category,omitempty"`
	SortOrder int     `json:"sort_order"`
	IsActive  bool    `json:"is_active"`
}
