package dto

// ── 学生模块 DTO ──

// CreateStudentRequest 创建学生请求
type CreateStudentRequest struct {
	StudentNumber string `json:"student_number" binding:"required,min=1,max=50"`
	Initials      string `json:"initials"       binding:"required,min=1,max=10"`
}

// StudentResponse 学生信息响应
type StudentResponse struct {
	ID            uint   `json:"id"`
	StudentNumber string `json:"student_number"`
	Initials      string `json:"initials"`
	IsArchived    bool   `json:"is_archived"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// StudentDetailResponse 学生详情响应（含最近表单与全部模板）
type StudentDetailResponse struct {
	StudentResponse
	Forms     []FormResponse     `json:"forms"`
	Templates []TemplateResponse `json:"templates"`
}
