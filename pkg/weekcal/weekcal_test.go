package weekcal

import (
	"testing"
	"time"
)

// ── MondayOfWeek 测试 ──

func TestMondayOfWeek_KnownDates(t *testing.T) {
	cases := []struct {
		week, year int
		want       string
	}{
		{1, 2024, "2024-01-01"},  // 2024 年第 1 周从元旦（周一）开始
		{52, 2024, "2024-12-23"}, // 2024 年最后一周
		{1, 2025, "2024-12-30"},  // 2025 年第 1 周的周一落在上一自然年
		{10, 2025, "2025-03-03"},
		{53, 2026, "2026-12-28"}, // 2026 年有 53 周
	}

	for _, c := range cases {
		got := FormatISODate(MondayOfWeek(c.week, c.year))
		if got != c.want {
			t.Errorf("MondayOfWeek(%d, %d) = %s，期望 %s", c.week, c.year, got, c.want)
		}
	}
}

func TestMondayOfWeek_AlwaysMonday(t *testing.T) {
	// 规格全域：周 [1,53] × 年 [2024,2050]，结果必须是周一且不崩溃
	for year := 2024; year <= 2050; year++ {
		for week := 1; week <= 53; week++ {
			m := MondayOfWeek(week, year)
			if m.Weekday() != time.Monday {
				t.Fatalf("MondayOfWeek(%d, %d) = %s 不是周一", week, year, m.Format(ISODateLayout))
			}
		}
	}
}

// ── NextWeek 测试 ──

func TestNextWeek_YearRollover(t *testing.T) {
	week, year := NextWeek(52, 2024)
	if week != 1 || year != 2025 {
		t.Errorf("NextWeek(52, 2024) = (%d, %d)，期望 (1, 2025)", week, year)
	}

	// 53 周年份：第 52 周的下一周仍在当年
	week, year = NextWeek(52, 2026)
	if week != 53 || year != 2026 {
		t.Errorf("NextWeek(52, 2026) = (%d, %d)，期望 (53, 2026)", week, year)
	}
	week, year = NextWeek(53, 2026)
	if week != 1 || year != 2027 {
		t.Errorf("NextWeek(53, 2026) = (%d, %d)，期望 (1, 2027)", week, year)
	}
}

func TestNextWeek_MonotonicNoGaps(t *testing.T) {
	// 从 2024 年第 1 周连续推进至 2050 年末：
	// 每步周一恰好前进 7 天，不重复、不跳周
	week, year := 1, 2024
	monday := MondayOfWeek(week, year)

	for year < 2050 || week < WeeksInYear(2050) {
		nextWeekNum, nextYear := NextWeek(week, year)
		nextMonday := MondayOfWeek(nextWeekNum, nextYear)

		if diff := nextMonday.Sub(monday); diff != 7*24*time.Hour {
			t.Fatalf("(%d, %d) → (%d, %d) 周一间隔 %v，期望 168h", week, year, nextWeekNum, nextYear, diff)
		}
		week, year, monday = nextWeekNum, nextYear, nextMonday
	}
}

// ── WeeksInYear 测试 ──

func TestWeeksInYear(t *testing.T) {
	cases := map[int]int{
		2024: 52,
		2025: 52,
		2026: 53, // 1 月 1 日为周四
		2027: 52,
		2032: 53,
	}
	for year, want := range cases {
		if got := WeeksInYear(year); got != want {
			t.Errorf("WeeksInYear(%d) = %d，期望 %d", year, got, want)
		}
	}
}

// ── FormatWeekRange 测试 ──

func TestFormatWeekRange(t *testing.T) {
	// 同月
	monday := time.Date(2023, time.November, 6, 0, 0, 0, 0, time.UTC)
	if got := FormatWeekRange(monday); got != "Nov 6-10, 2023" {
		t.Errorf("同月区间 = %q，期望 %q", got, "Nov 6-10, 2023")
	}

	// 跨月
	monday = time.Date(2023, time.November, 27, 0, 0, 0, 0, time.UTC)
	if got := FormatWeekRange(monday); got != "Nov 27 - Dec 1, 2023" {
		t.Errorf("跨月区间 = %q，期望 %q", got, "Nov 27 - Dec 1, 2023")
	}
}

func TestFormatWeekRange_SpansMondayToFriday(t *testing.T) {
	// 回环性质：任意 (week, year) 的区间覆盖该周周一至周五
	for year := 2024; year <= 2050; year++ {
		weeks := WeeksInYear(year)
		for week := 1; week <= weeks; week++ {
			monday := MondayOfWeek(week, year)
			friday := monday.AddDate(0, 0, 4)
			if friday.Weekday() != time.Friday {
				t.Fatalf("(%d, %d) 周五计算错误: %s", week, year, friday.Format(ISODateLayout))
			}
			if got := FormatWeekRange(monday); got == "" {
				t.Fatalf("(%d, %d) 区间为空", week, year)
			}
		}
	}
}

// ── WeekDates / DayName 测试 ──

func TestWeekDates(t *testing.T) {
	monday := MondayOfWeek(10, 2025)
	dates := WeekDates(monday)
	if len(dates) != 5 {
		t.Fatalf("WeekDates 返回 %d 天，期望 5", len(dates))
	}
	for i, d := range dates {
		if want := monday.AddDate(0, 0, i); !d.Equal(want) {
			t.Errorf("第 %d 天 = %s，期望 %s", i+1, FormatISODate(d), FormatISODate(want))
		}
	}
}

func TestDayNames(t *testing.T) {
	if DayName(1) != "Monday" || DayName(5) != "Friday" {
		t.Error("DayName 边界取值错误")
	}
	if ShortDayName(3) != "Wed" {
		t.Errorf("ShortDayName(3) = %q，期望 Wed", ShortDayName(3))
	}
	if DayName(0) != "" || DayName(6) != "" || ShortDayName(-1) != "" {
		t.Error("越界 dayOfWeek 应返回空串")
	}
}
