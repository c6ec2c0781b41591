package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/blakejoy/saccom-app/internal/dto"
	"github.com/blakejoy/saccom-app/internal/model"
	"github.com/blakejoy/saccom-app/internal/repository"
	pkgerrors "github.com/blakejoy/saccom-app/pkg/errors"
	"github.com/blakejoy/saccom-app/pkg/weekcal"
)

// 支持的表单年份范围
const (
	MinFormYear = 2024
	MaxFormYear = 2050
)

// 周表单服务错误定义
var (
	ErrFormNotFound              = errors.New("表单不存在")
	ErrFormYearOutOfRange        = errors.New("年份超出支持范围")
	ErrFormWeekOutOfRange        = errors.New("周次超出该年份的 ISO 周数")
	ErrFormStartDateMismatch     = errors.New("起始日期与周次/年份推导的周一不一致")
	ErrFormIsSas                 = errors.New("SAS 表单不允许关联单项措施")
	ErrFormAccommodationExists   = errors.New("该措施已关联到此表单")
	ErrFormAccommodationNotFound = errors.New("表单措施关联不存在")
)

// FormService 周表单服务接口
type FormService interface {
	Create(ctx context.Context, req *dto.CreateFormRequest) (*dto.FormDetailResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.FormDetailResponse, error)
	ListByStudent(ctx context.Context, studentID uint) ([]dto.FormResponse, error)
	Duplicate(ctx context.Context, id uint) (*dto.FormDetailResponse, error)
	Delete(ctx context.Context, id uint) error
	AddAccommodation(ctx context.Context, formID uint, req *dto.AddFormAccommodationRequest) (*dto.FormAccommodationResponse, error)
	RemoveAccommodation(ctx context.Context, formAccommodationID uint) error
}

type formService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFormService 创建周表单服务实例
func NewFormService(repo *repository.Repository, logger *zap.Logger) FormService {
	return &formService{repo: repo, logger: logger}
}

// Create 创建周表单。原子单元：表单 + 措施关联 + 每个关联 5 条 'n/a' 跟踪行，
// 任何一步失败整体回滚。IsSas=true 时忽略措施集，不产生关联行。
func (s *formService) Create(ctx context.Context, req *dto.CreateFormRequest) (*dto.FormDetailResponse, error) {
	if err := s.validateWeek(req.WeekNumber, req.Year, req.StartDate); err != nil {
		return nil, err
	}

	exists, err := s.repo.Student.Exists(ctx, req.StudentID)
	if err != nil {
		s.logger.Error("校验学生失败", zap.Uint("student_id", req.StudentID), zap.Error(err))
		return nil, err
	}
	if !exists {
		return nil, ErrStudentNotFound
	}

	if req.TemplateID != nil {
		ok, err := s.repo.Template.Exists(ctx, *req.TemplateID)
		if err != nil {
			s.logger.Error("校验模板失败", zap.Uint("template_id", *req.TemplateID), zap.Error(err))
			return nil, err
		}
		if !ok {
			return nil, ErrTemplateNotFound
		}
	}

	accommodationIDs := dedupeIDs(req.AccommodationIDs)
	if !req.IsSas && len(accommodationIDs) > 0 {
		count, err := s.repo.Accommodation.CountByIDs(ctx, accommodationIDs)
		if err != nil {
			s.logger.Error("校验措施引用失败", zap.Error(err))
			return nil, err
		}
		if count != int64(len(accommodationIDs)) {
			return nil, ErrAccommodationNotFound
		}
	}

	form := &model.Form{
		StudentID:  req.StudentID,
		WeekNumber: req.WeekNumber,
		Year:       req.Year,
		StartDate:  req.StartDate,
		IsSas:      req.IsSas,
		TemplateID: req.TemplateID,
	}
	if err := s.repo.Form.CreateWithAccommodations(ctx, form, accommodationIDs); err != nil {
		s.logger.Error("创建表单失败",
			zap.Uint("student_id", req.StudentID),
			zap.Int("week_number", req.WeekNumber),
			zap.Int("year", req.Year),
			zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, form.ID)
}

// validateWeek 周次/年份范围校验，并要求 startDate 恒等于推导出的 ISO 周一
func (s *formService) validateWeek(weekNumber, year int, startDate string) error {
	if year < MinFormYear || year > MaxFormYear {
		return ErrFormYearOutOfRange
	}
	if weekNumber < 1 || weekNumber > weekcal.WeeksInYear(year) {
		return ErrFormWeekOutOfRange
	}
	if startDate != weekcal.FormatISODate(weekcal.MondayOfWeek(weekNumber, year)) {
		return ErrFormStartDateMismatch
	}
	return nil
}

func (s *formService) GetByID(ctx context.Context, id uint) (*dto.FormDetailResponse, error) {
	form, err := s.repo.Form.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		s.logger.Error("查询表单失败", zap.Uint("form_id", id), zap.Error(err))
		return nil, err
	}
	return toFormDetailResponse(form), nil
}

func (s *formService) ListByStudent(ctx context.Context, studentID uint) ([]dto.FormResponse, error) {
	forms, err := s.repo.Form.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("查询表单列表失败", zap.Uint("student_id", studentID), zap.Error(err))
		return nil, err
	}

	responses := make([]dto.FormResponse, 0, len(forms))
	for i := range forms {
		responses = append(responses, *toFormResponse(&forms[i]))
	}
	return responses, nil
}

// Duplicate 复制表单到下一周：周次/年份经周历重新推导（跨年与 53 周年份安全），
// 措施集照搬源表单当前的关联，跟踪状态不复制——新表单从全 'n/a' 开始。
func (s *formService) Duplicate(ctx context.Context, id uint) (*dto.FormDetailResponse, error) {
	source, err := s.repo.Form.GetWithAccommodations(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		s.logger.Error("查询源表单失败", zap.Uint("form_id", id), zap.Error(err))
		return nil, err
	}

	weekNumber, year := weekcal.NextWeek(source.WeekNumber, source.Year)
	if year > MaxFormYear {
		return nil, ErrFormYearOutOfRange
	}

	accommodationIDs := make([]uint, 0, len(source.FormAccommodations))
	for _, link := range source.FormAccommodations {
		accommodationIDs = append(accommodationIDs, link.AccommodationID)
	}

	form := &model.Form{
		StudentID:  source.StudentID,
		WeekNumber: weekNumber,
		Year:       year,
		StartDate:  weekcal.FormatISODate(weekcal.MondayOfWeek(weekNumber, year)),
		IsSas:      source.IsSas,
		TemplateID: source.TemplateID,
	}
	if err := s.repo.Form.CreateWithAccommodations(ctx, form, accommodationIDs); err != nil {
		s.logger.Error("复制表单失败",
			zap.Uint("source_form_id", id),
			zap.Int("week_number", weekNumber),
			zap.Int("year", year),
			zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, form.ID)
}

// Delete 删除表单；对不存在的 ID 为幂等空操作
func (s *formService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Form.Delete(ctx, id); err != nil {
		s.logger.Error("删除表单失败", zap.Uint("form_id", id), zap.Error(err))
		return err
	}
	return nil
}

// AddAccommodation 向既有表单增量添加措施，同一事务内生成 5 条 'n/a' 跟踪行。
// SAS 表单拒绝添加（零关联不变量）；同一 (表单, 措施) 二次添加返回 ErrFormAccommodationExists。
func (s *formService) AddAccommodation(ctx context.Context, formID uint, req *dto.AddFormAccommodationRequest) (*dto.FormAccommodationResponse, error) {
	form, err := s.repo.Form.GetWithAccommodations(ctx, formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		s.logger.Error("查询表单失败", zap.Uint("form_id", formID), zap.Error(err))
		return nil, err
	}
	if form.IsSas {
		return nil, ErrFormIsSas
	}

	acc, err := s.repo.Accommodation.GetByID(ctx, req.AccommodationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccommodationNotFound
		}
		s.logger.Error("查询措施失败", zap.Uint("accommodation_id", req.AccommodationID), zap.Error(err))
		return nil, err
	}

	exists, err := s.repo.Form.AccommodationPairExists(ctx, formID, req.AccommodationID)
	if err != nil {
		s.logger.Error("校验表单措施关联失败", zap.Uint("form_id", formID), zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrFormAccommodationExists
	}

	link, err := s.repo.Form.AddAccommodation(ctx, formID, req.AccommodationID)
	if err != nil {
		// 并发下唯一索引与存储层 SAS 校验兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrFormAccommodationExists
		}
		if errors.Is(err, pkgerrors.ErrSasForm) {
			return nil, ErrFormIsSas
		}
		s.logger.Error("添加表单措施失败",
			zap.Uint("form_id", formID),
			zap.Uint("accommodation_id", req.AccommodationID),
			zap.Error(err))
		return nil, err
	}

	tracking, err := s.repo.Tracking.ListByFormAccommodation(ctx, link.ID)
	if err != nil {
		s.logger.Error("查询跟踪网格失败", zap.Uint("form_accommodation_id", link.ID), zap.Error(err))
		return nil, err
	}

	link.Accommodation = acc
	link.DailyTracking = tracking
	return toFormAccommodationResponse(link), nil
}

// RemoveAccommodation 移除表单措施关联；其 5 条跟踪行由外键级联清除
func (s *formService) RemoveAccommodation(ctx context.Context, formAccommodationID uint) error {
	err := s.repo.Form.RemoveAccommodation(ctx, formAccommodationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFormAccommodationNotFound
		}
		s.logger.Error("移除表单措施失败", zap.Uint("form_accommodation_id", formAccommodationID), zap.Error(err))
		return err
	}
	return nil
}
