package dto

// ── 周表单模块 DTO ──

// CreateFormRequest 创建表单请求
// StartDate 必须等于 (WeekNumber, Year) 对应的 ISO 周一日期；
// IsSas=true 时 AccommodationIDs 被忽略（SAS 表单不跟踪单项措施）
type CreateFormRequest struct {
	StudentID        uint   `json:"student_id"        binding:"required"`
	WeekNumber       int    `json:"week_number"       binding:"required,min=1,max=53"`
	Year             int    `json:"year"              binding:"required,min=2024,max=2050"`
	StartDate        string `json:"start_date"        binding:"required,datetime=2006-01-02"`
	IsSas            bool   `json:"is_sas"`
	AccommodationIDs []uint `json:"accommodation_ids" binding:"omitempty,dive,min=1"`
	TemplateID       *uint  `json:"template_id"`
}

// AddFormAccommodationRequest 向既有表单增量添加措施请求
type AddFormAccommodationRequest struct {
	AccommodationID uint `json:"accommodation_id" binding:"required"`
}

// FormResponse 表单信息响应（不含嵌套关系）
type FormResponse struct {
	ID         uint   `json:"id"`
	StudentID  uint   `json:"student_id"`
	WeekNumber int    `json:"week_number"`
	Year       int    `json:"year"`
	StartDate  string `json:"start_date"`
	WeekRange  string `json:"week_range"` // 如 "Nov 6-10, 2023"
	IsSas      bool   `json:"is_sas"`
	TemplateID *uint  `json:"template_id,omitempty"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// FormDetailResponse 表单详情响应（学生、模板、措施关联与跟踪网格）
type FormDetailResponse struct {
	FormResponse
	Student            *StudentResponse            `json:"student,omitempty"`
	Template           *TemplateResponse           `json:"template,omitempty"`
	FormAccommodations []FormAccommodationResponse `json:"form_accommodations"`
}

// FormAccommodationResponse 表单措施关联响应（含 5 天跟踪行，按星期升序）
type FormAccommodationResponse struct {
	ID              uint                  `json:"id"`
	FormID          uint                  `json:"form_id"`
	AccommodationID uint                  `json:"accommodation_id"`
	Accommodation   AccommodationResponse `json:"accommodation"`
	DailyTracking   []TrackingResponse    `json:"daily_tracking"`
}
