package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/blakejoy/saccom-app/internal/model"
)

func TestExportServiceFormSheet(t *testing.T) {
	formRepo := &mockFormRepo{
		getByIDFn: func(_ context.Context, id uint) (*model.Form, error) {
			form := formWithGrid(id, 2)
			form.Student = &model.Student{ID: 1, StudentNumber: "S-2024-001", Initials: "AB"}
			form.FormAccommodations[0].DailyTracking[0].Status = model.DailyStatusAccepted
			return form, nil
		},
	}
	svc := NewExportService(newTestRepository(nil, nil, nil, formRepo, nil), zap.NewNop())

	buf, filename, err := svc.ExportFormSheet(context.Background(), 7)
	if err != nil {
		t.Fatalf("ExportFormSheet() error = %v", err)
	}
	if filename != "form_S-2024-001_2025-W10.xlsx" {
		t.Errorf("文件名 = %q", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("打开导出文件失败: %v", err)
	}
	defer f.Close()

	title, err := f.GetCellValue("Tracking", "A1")
	if err != nil {
		t.Fatalf("读取标题失败: %v", err)
	}
	if !strings.Contains(title, "Week 10, 2025") {
		t.Errorf("标题 = %q", title)
	}

	mark, err := f.GetCellValue("Tracking", "B4")
	if err != nil {
		t.Fatalf("读取单元格失败: %v", err)
	}
	if mark != "✓" {
		t.Errorf("周一状态符号 = %q, want ✓", mark)
	}
}

func TestExportServiceFormSheetMissing(t *testing.T) {
	svc := NewExportService(newTestRepository(nil, nil, nil, &mockFormRepo{}, nil), zap.NewNop())
	_, _, err := svc.ExportFormSheet(context.Background(), 404)
	if !errors.Is(err, ErrFormNotFound) {
		t.Errorf("ExportFormSheet() error = %v, want ErrFormNotFound", err)
	}
}

func TestExportServiceStudentCalendar(t *testing.T) {
	studentRepo := &mockStudentRepo{
		getByIDFn: func(_ context.Context, id uint) (*model.Student, error) {
			return &model.Student{ID: id, StudentNumber: "S-2024-001", Initials: "AB"}, nil
		},
	}
	formRepo := &mockFormRepo{
		listByStudentFn: func(_ context.Context, studentID uint) ([]model.Form, error) {
			return []model.Form{
				{ID: 1, StudentID: studentID, WeekNumber: 10, Year: 2025, StartDate: "2025-03-03"},
				{ID: 2, StudentID: studentID, WeekNumber: 11, Year: 2025, StartDate: "2025-03-10"},
			}, nil
		},
	}
	svc := NewExportService(newTestRepository(studentRepo, nil, nil, formRepo, nil), zap.NewNop())

	buf, filename, err := svc.ExportStudentCalendar(context.Background(), 1)
	if err != nil {
		t.Fatalf("ExportStudentCalendar() error = %v", err)
	}
	if filename != "forms_S-2024-001.ics" {
		t.Errorf("文件名 = %q", filename)
	}

	serialized := buf.String()
	if count := strings.Count(serialized, "BEGIN:VEVENT"); count != 2 {
		t.Errorf("事件数 = %d, want 2", count)
	}
	if !strings.Contains(serialized, "Accommodations AB") {
		t.Error("事件摘要缺少学生信息")
	}
	// SUMMARY 中的逗号按 RFC 5545 转义输出
	if !strings.Contains(serialized, `Week 10\, 2025`) {
		t.Error("事件摘要缺少周信息")
	}
}

func TestExportServiceStudentCalendarNoForms(t *testing.T) {
	studentRepo := &mockStudentRepo{
		getByIDFn: func(_ context.Context, id uint) (*model.Student, error) {
			return &model.Student{ID: id, StudentNumber: "S-2024-002"}, nil
		},
	}
	svc := NewExportService(newTestRepository(studentRepo, nil, nil, &mockFormRepo{}, nil), zap.NewNop())
	_, _, err := svc.ExportStudentCalendar(context.Background(), 1)
	if !errors.Is(err, ErrExportNoForms) {
		t.Errorf("ExportStudentCalendar() error = %v, want ErrExportNoForms", err)
	}
}
