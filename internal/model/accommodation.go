package model

// Accommodation 支持措施表 — 对应 accommodations（预置清单，首次启动播种）
// 停用（IsActive=false）后仍保留在历史表单上，但不再出现在新建表单的候选列表中。
// 硬删除级联清除表单/模板上的关联行，不可逆；被引用的措施应优先停用。
type Accommodation struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"               json:"id"`
	Name      string  `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Category  *string `gorm:"type:varchar(100)"                      json:"category,omitempty"`
	SortOrder int     `gorm:"not null;default:0"                     json:"sort_order"`
	IsActive  bool    `gorm:"not null;default:true"                  json:"is_active"`
}

// TableName 指定表名
func (Accommodation) TableName() string { return "accommodations" }
