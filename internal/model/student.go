package model

// Student 学生表 — 对应 students
// 归档（IsArchived）为软删除开关；硬删除级联清除名下所有表单与模板。
type Student struct {
	ID            uint   `gorm:"primaryKey;autoIncrement"              json:"id"`
	StudentNumber string `gorm:"type:varchar(50);not null;uniqueIndex" json:"student_number"`
	Initials      string `gorm:"type:varchar(10);not null"             json:"initials"`
	IsArchived    bool   `gorm:"not null;default:false"                json:"is_archived"`
	BaseModel

	// 关联
	Forms     []Form     `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"forms,omitempty"`
	Templates []Template `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"templates,omitempty"`
}

// TableName 指定表名
func (Student) TableName() string { return "students" }
