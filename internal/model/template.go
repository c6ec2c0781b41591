package model

import "time"

// Template 措施模板表 — 对应 templates
// 不变量：同一学生任意时刻至多一个 IsDefault=true 的模板（事务内先清后设）。
type Template struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"   json:"id"`
	StudentID    uint   `gorm:"not null;index"             json:"student_id"`
	TemplateName string `gorm:"type:varchar(255);not null" json:"template_name"`
	IsDefault    bool   `gorm:"not null;default:false"     json:"is_default"`
	BaseModel

	// 关联
	Student                *Student                `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"  json:"student,omitempty"`
	TemplateAccommodations []TemplateAccommodation `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE" json:"template_accommodations,omitempty"`
}

// TableName 指定表名
func (Template) TableName() string { return "templates" }

// TemplateAccommodation 模板-措施关联表 — 对应 template_accommodations
// 模板保存的是措施 ID 快照，不随措施生命周期联动（停用不影响已存模板）。
type TemplateAccommodation struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TemplateID      uint      `gorm:"not null;index"           json:"template_id"`
	AccommodationID uint      `gorm:"not null"                 json:"accommodation_id"`
	CreatedAt       time.Time `gorm:"not null;autoCreateTime"  json:"created_at"`

	// 关联
	Accommodation *Accommodation `gorm:"foreignKey:AccommodationID;constraint:OnDelete:CASCADE" json:"accommodation,omitempty"`
}

// TableName 指定表名
func (TemplateAccommodation) TableName() string { return "template_accommodations" }
