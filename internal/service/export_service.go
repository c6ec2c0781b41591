package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/blakejoy/saccom-app/internal/model"
	"github.com/blakejoy/saccom-app/internal/repository"
	"github.com/blakejoy/saccom-app/pkg/weekcal"
)

// 导出服务错误定义
var (
	ErrExportNoForms  = errors.New("该学生暂无表单可导出")
	ErrExportGenerate = errors.New("生成导出文件失败")
)

// 跟踪状态在表格中的展示符号
var statusMarks = map[string]string{
	model.DailyStatusAccepted: "✓",
	model.DailyStatusRejected: "✗",
	model.DailyStatusNA:       "—",
}

// ExportService 导出服务接口
type ExportService interface {
	ExportFormSheet(ctx context.Context, formID uint) (*bytes.Buffer, string, error)
	ExportStudentCalendar(ctx context.Context, studentID uint) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建导出服务实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ExportFormSheet 将单张周表单导出为 xlsx 跟踪网格：
// 行为措施，列为周一至周五，单元格为状态符号（备注附在符号后）。
func (s *exportService) ExportFormSheet(ctx context.Context, formID uint) (*bytes.Buffer, string, error) {
	form, err := s.repo.Form.GetByID(ctx, formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrFormNotFound
		}
		s.logger.Error("查询表单失败", zap.Uint("form_id", formID), zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Tracking"
	f.SetSheetName("Sheet1", sheet)

	monday := weekcal.MondayOfWeek(form.WeekNumber, form.Year)
	title := fmt.Sprintf("Week %d, %d (%s)", form.WeekNumber, form.Year, weekcal.FormatWeekRange(monday))
	if form.Student != nil {
		title = form.Student.Initials + " — " + title
	}
	f.SetCellValue(sheet, "A1", title)
	f.MergeCell(sheet, "A1", "F1")

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err == nil {
		f.SetCellStyle(sheet, "A1", "F1", titleStyle)
	}

	// 表头：措施列 + 周一至周五（含日期）
	f.SetCellValue(sheet, "A3", "Accommodation")
	for day := 1; day <= model.TrackedDaysPerWeek; day++ {
		cell, _ := excelize.CoordinatesToCellName(day+1, 3)
		date := monday.AddDate(0, 0, day-1)
		f.SetCellValue(sheet, cell, fmt.Sprintf("%s %s", weekcal.ShortDayName(day), date.Format("Jan 2")))
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err == nil {
		f.SetCellStyle(sheet, "A3", "F3", headerStyle)
	}

	if form.IsSas {
		f.SetCellValue(sheet, "A4", "SAS（固定措施方案，不逐项跟踪）")
		f.MergeCell(sheet, "A4", "F4")
	}

	row := 4
	for i := range form.FormAccommodations {
		link := &form.FormAccommodations[i]
		name := fmt.Sprintf("#%d", link.AccommodationID)
		if link.Accommodation != nil {
			name = link.Accommodation.Name
		}
		nameCell, _ := excelize.CoordinatesToCellName(1, row)
		f.SetCellValue(sheet, nameCell, name)

		for j := range link.DailyTracking {
			tracking := &link.DailyTracking[j]
			if tracking.DayOfWeek < 1 || tracking.DayOfWeek > model.TrackedDaysPerWeek {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(tracking.DayOfWeek+1, row)
			value := statusMarks[tracking.Status]
			if tracking.Notes != nil && *tracking.Notes != "" {
				value = value + " " + *tracking.Notes
			}
			f.SetCellValue(sheet, cell, value)
		}
		row++
	}

	f.SetColWidth(sheet, "A", "A", 45)
	f.SetColWidth(sheet, "B", "F", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("写出 xlsx 失败", zap.Uint("form_id", formID), zap.Error(err))
		return nil, "", ErrExportGenerate
	}

	filename := fmt.Sprintf("form_%d_%d-W%02d.xlsx", form.StudentID, form.Year, form.WeekNumber)
	if form.Student != nil {
		filename = fmt.Sprintf("form_%s_%d-W%02d.xlsx", form.Student.StudentNumber, form.Year, form.WeekNumber)
	}
	return buf, filename, nil
}

// ExportStudentCalendar 将学生全部表单导出为 iCalendar：
// 每张表单一个覆盖周一至周五的全天事件，可导入任意日历客户端。
func (s *exportService) ExportStudentCalendar(ctx context.Context, studentID uint) (*bytes.Buffer, string, error) {
	student, err := s.repo.Student.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.Uint("student_id", studentID), zap.Error(err))
		return nil, "", err
	}

	forms, err := s.repo.Form.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("查询表单列表失败", zap.Uint("student_id", studentID), zap.Error(err))
		return nil, "", err
	}
	if len(forms) == 0 {
		return nil, "", ErrExportNoForms
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//saccom-app//Accommodation Forms//EN")

	now := time.Now().UTC()
	for i := range forms {
		form := &forms[i]
		monday := weekcal.MondayOfWeek(form.WeekNumber, form.Year)

		event := cal.AddEvent(fmt.Sprintf("form-%d@saccom-app", form.ID))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetModifiedAt(form.UpdatedAt)
		event.SetAllDayStartAt(monday)
		// DTEND 为排他边界：周六零点即覆盖到周五整天
		event.SetAllDayEndAt(monday.AddDate(0, 0, 5))
		event.SetSummary(fmt.Sprintf("Accommodations %s — Week %d, %d", student.Initials, form.WeekNumber, form.Year))
		event.SetDescription(weekcal.FormatWeekRange(monday))
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("forms_%s.ics", student.StudentNumber)
	return buf, filename, nil
}
