package model

// ── 每日状态枚举 ──

const (
	DailyStatusAccepted = "accepted"
	DailyStatusRejected = "rejected"
	DailyStatusNA       = "n/a"
)

// TrackedDaysPerWeek 每个表单措施固定跟踪的天数（周一至周五）
const TrackedDaysPerWeek = 5

// DailyTracking 每日跟踪表 — 对应 daily_tracking
// (FormAccommodationID, DayOfWeek) 唯一；DayOfWeek 取 1-5（周一至周五）。
// 行的创建与删除只经由 FormAccommodation 聚合，外部不得直接增删。
// Version 用于可选的乐观并发检查（请求携带版本号时生效）。
type DailyTracking struct {
	ID                  uint    `gorm:"primaryKey;autoIncrement"                    json:"id"`
	FormAccommodationID uint    `gorm:"not null;uniqueIndex:uk_daily_tracking_day"  json:"form_accommodation_id"`
	DayOfWeek           int     `gorm:"not null;uniqueIndex:uk_daily_tracking_day"  json:"day_of_week"` // 1-5
	Status              string  `gorm:"type:varchar(10);not null;default:'n/a'"     json:"status"`
	Notes               *string `gorm:"type:text"                                   json:"notes,omitempty"`
	Version             int     `gorm:"not null;default:1"                          json:"version"`
	BaseModel
}

// TableName 指定表名
func (DailyTracking) TableName() string { return "daily_tracking" }

// ValidDailyStatus 校验状态取值
func ValidDailyStatus(s string) bool {
	switch s {
	case DailyStatusAccepted, DailyStatusRejected, DailyStatusNA:
		return true
	}
	return false
}
