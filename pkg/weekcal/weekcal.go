// Package weekcal 提供 ISO 8601 周历的纯函数计算。
// 周从周一开始，第 1 周为包含 1 月 4 日的那一周；所有函数确定性、无副作用。
package weekcal

import (
	"fmt"
	"time"
)

// ISODateLayout 持久化使用的日期格式（周一日期）
const ISODateLayout = "2006-01-02"

// MondayOfWeek 返回 year 年第 weekNumber 周的周一（UTC 零点）。
// 对超出当年实际周数的 weekNumber 不报错，继续按 7 天步进外推，
// 得到的仍是确定的周一日期；取值范围由调用方校验。
func MondayOfWeek(weekNumber, year int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	wd := int(jan4.Weekday())
	if wd == 0 {
		wd = 7
	}
	firstMonday := jan4.AddDate(0, 0, 1-wd)
	return firstMonday.AddDate(0, 0, (weekNumber-1)*7)
}

// NextWeek 返回下一周的 (weekNumber, year)。
// 通过当前周一加 7 天后重新取 ISO 周推导，而非直接加一，
// 从而正确处理 52 周与 53 周年份的跨年回绕。
func NextWeek(weekNumber, year int) (int, int) {
	nextMonday := MondayOfWeek(weekNumber, year).AddDate(0, 0, 7)
	isoYear, isoWeek := nextMonday.ISOWeek()
	return isoWeek, isoYear
}

// CurrentWeek 返回当前时刻所属的 (weekNumber, year)
func CurrentWeek() (int, int) {
	isoYear, isoWeek := time.Now().ISOWeek()
	return isoWeek, isoYear
}

// WeeksInYear 返回 year 的 ISO 周数（52 或 53）。
// ISO 规则：12 月 28 日永远落在当年最后一周。
func WeeksInYear(year int) int {
	_, w := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return w
}

// WeekDates 返回以 monday 开始的教学周日期（周一至周五，共 5 天）
func WeekDates(monday time.Time) []time.Time {
	dates := make([]time.Time, 5)
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i)
	}
	return dates
}

// FormatWeekRange 将教学周（周一至周五）格式化为人类可读区间。
// 同月："Nov 6-10, 2023"；跨月："Nov 27 - Dec 1, 2023"。
func FormatWeekRange(monday time.Time) string {
	friday := monday.AddDate(0, 0, 4)
	if monday.Month() == friday.Month() {
		return fmt.Sprintf("%s-%s", monday.Format("Jan 2"), friday.Format("2, 2006"))
	}
	return fmt.Sprintf("%s - %s", monday.Format("Jan 2"), friday.Format("Jan 2, 2006"))
}

// FormatISODate 将日期格式化为 "YYYY-MM-DD"
func FormatISODate(d time.Time) string {
	return d.Format(ISODateLayout)
}

// DayName 返回 1-5 对应的英文星期名，越界返回空串
func DayName(dayOfWeek int) string {
	names := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	if dayOfWeek < 1 || dayOfWeek > len(names) {
		return ""
	}
	return names[dayOfWeek-1]
}

// ShortDayName 返回 1-5 对应的英文星期简称，越界返回空串
func ShortDayName(dayOfWeek int) string {
	names := []string{"Mon", "Tue", "Wed", "Thu", "Fri"}
	if dayOfWeek < 1 || dayOfWeek > len(names) {
		return ""
	}
	return names[dayOfWeek-1]
}
