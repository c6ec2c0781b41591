package dto

// ── 措施模板模块 DTO ──

// CreateTemplateRequest 创建模板请求
// 公开契约要求措施集非空（存储层本身不作此限制）
type CreateTemplateRequest struct {
	StudentID        uint   `json:"student_id"        binding:"required"`
	TemplateName     string `json:"template_name"     binding:"required,min=1,max=255"`
	IsDefault        bool   `json:"is_default"`
	AccommodationIDs []uint `json:"accommodation_ids" binding:"required,min=1,dive,min=1"`
}

// SetDefaultTemplateRequest 设置默认模板请求
type SetDefaultTemplateRequest struct {
	StudentID uint `json:"student_id" binding:"required"`
}

// TemplateResponse 模板信息响应
type TemplateResponse struct {
	ID           uint   `json:"id"`
	StudentID    uint   `json:"student_id"`
	TemplateName string `json:"template_name"`
	IsDefault    bool   `json:"is_default"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// TemplateDetailResponse 模板详情响应（含措施快照）
type TemplateDetailResponse struct {
	TemplateResponse
	Accommodations []AccommodationResponse `json:"accommodations"`
}
