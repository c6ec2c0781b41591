package model

import "time"

// BaseModel 通用审计字段（业务模型按需嵌入）
// SQLite 单机单用户场景，无操作者概念，仅保留创建/更新时间。
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
