package model

import "time"

// Form 周表单表 — 对应 forms
// (WeekNumber, Year) 标识被跟踪的周；StartDate 为冗余持久化的 ISO 周一日期，
// 必须恒等于 weekcal.MondayOfWeek(WeekNumber, Year) 的输出。
// IsSas=true 表示使用外部固定措施方案（SAS），该表单不得有任何措施关联行。
// 同一学生允许存在同一周的多张表单（设计上不去重）。
type Form struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"  json:"id"`
	StudentID  uint   `gorm:"not null;index"            json:"student_id"`
	WeekNumber int    `gorm:"not null"                  json:"week_number"` // 1-53
	Year       int    `gorm:"not null"                  json:"year"`        // 2024-2050
	StartDate  string `gorm:"type:varchar(10);not null" json:"start_date"`  // "2006-01-02"，周一
	IsSas      bool   `gorm:"not null;default:false"    json:"is_sas"`
	TemplateID *uint  `gorm:"index"                     json:"template_id,omitempty"`
	BaseModel

	// 关联
	Student            *Student            `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"   json:"student,omitempty"`
	Template           *Template           `gorm:"foreignKey:TemplateID;constraint:OnDelete:SET NULL" json:"template,omitempty"`
	FormAccommodations []FormAccommodation `gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"      json:"form_accommodations,omitempty"`
}

// TableName 指定表名
func (Form) TableName() string { return "forms" }

// FormAccommodation 表单-措施关联表 — 对应 form_accommodations
// (FormID, AccommodationID) 唯一；每行在创建的同一事务内生成恰好 5 条 DailyTracking。
type FormAccommodation struct {
	ID              uint      `gorm:"primaryKey;autoIncrement"                                 json:"id"`
	FormID          uint      `gorm:"not null;uniqueIndex:uk_form_accommodations_pair"         json:"form_id"`
	AccommodationID uint      `gorm:"not null;uniqueIndex:uk_form_accommodations_pair"         json:"accommodation_id"`
	CreatedAt       time.Time `gorm:"not null;autoCreateTime"                                  json:"created_at"`

	// 关联
	Accommodation *Accommodation  `gorm:"foreignKey:AccommodationID;constraint:OnDelete:CASCADE"      json:"accommodation,omitempty"`
	DailyTracking []DailyTracking `gorm:"foreignKey:FormAccommodationID;constraint:OnDelete:CASCADE" json:"daily_tracking,omitempty"`
}

// TableName 指定表名
func (FormAccommodation) TableName() string { return "form_accommodations" }
