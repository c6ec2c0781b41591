package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/blakejoy/saccom-app/internal/dto"
	"github.com/blakejoy/saccom-app/internal/model"
	"github.com/blakejoy/saccom-app/internal/repository"
)

// 措施模板服务错误定义
var (
	ErrTemplateNotFound         = errors.New("模板不存在")
	ErrTemplateNoAccommodations = errors.New("模板必须至少包含一项支持措施")
)

// TemplateService 措施模板服务接口
type TemplateService interface {
	Create(ctx context.Context, req *dto.CreateTemplateRequest) (*dto.TemplateDetailResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.TemplateDetailResponse, error)
	ListByStudent(ctx context.Context, studentID uint) ([]dto.TemplateDetailResponse, error)
	SetDefault(ctx context.Context, studentID, templateID uint) error
	Delete(ctx context.Context, id uint) error
}

type templateService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTemplateService 创建措施模板服务实例
func NewTemplateService(repo *repository.Repository, logger *zap.Logger) TemplateService {
	return &templateService{repo: repo, logger: logger}
}

// Create 创建模板及其措施快照。
// IsDefault=true 时在同一事务内先清除该学生既有默认再落库，
// 保证任意时刻每个学生至多一个默认模板。
func (s *templateService) Create(ctx context.Context, req *dto.CreateTemplateRequest) (*dto.TemplateDetailResponse, error) {
	accommodationIDs := dedupeIDs(req.AccommodationIDs)
	if len(accommodationIDs) == 0 {
		return nil, ErrTemplateNoAccommodations
	}

	exists, err := s.repo.Student.Exists(ctx, req.StudentID)
	if err != nil {
		s.logger.Error("校验学生失败", zap.Uint("student_id", req.StudentID), zap.Error(err))
		return nil, err
	}
	if !exists {
		return nil, ErrStudentNotFound
	}

	count, err := s.repo.Accommodation.CountByIDs(ctx, accommodationIDs)
	if err != nil {
		s.logger.Error("校验措施引用失败", zap.Error(err))
		return nil, err
	}
	if count != int64(len(accommodationIDs)) {
		return nil, ErrAccommodationNotFound
	}

	template := &model.Template{
		StudentID:    req.StudentID,
		TemplateName: req.TemplateName,
		IsDefault:    req.IsDefault,
	}
	if err := s.repo.Template.CreateWithAccommodations(ctx, template, accommodationIDs); err != nil {
		s.logger.Error("创建模板失败",
			zap.Uint("student_id", req.StudentID),
			zap.String("template_name", req.TemplateName),
			zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, template.ID)
}

func (s *templateService) GetByID(ctx context.Context, id uint) (*dto.TemplateDetailResponse, error) {
	template, err := s.repo.Template.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		s.logger.Error("查询模板失败", zap.Uint("template_id", id), zap.Error(err))
		return nil, err
	}
	return toTemplateDetailResponse(template), nil
}

// ListByStudent 默认模板优先；学生不存在时返回空列表而非错误
func (s *templateService) ListByStudent(ctx context.Context, studentID uint) ([]dto.TemplateDetailResponse, error) {
	templates, err := s.repo.Template.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("查询模板列表失败", zap.Uint("student_id", studentID), zap.Error(err))
		return nil, err
	}

	responses := make([]dto.TemplateDetailResponse, 0, len(templates))
	for i := range templates {
		responses = append(responses, *toTemplateDetailResponse(&templates[i]))
	}
	return responses, nil
}

// SetDefault 将模板设为该学生的默认模板。
// 模板不存在或不属于该学生时返回 ErrTemplateNotFound，不改动任何默认位。
func (s *templateService) SetDefault(ctx context.Context, studentID, templateID uint) error {
	err := s.repo.Template.SetDefault(ctx, studentID, templateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTemplateNotFound
		}
		s.logger.Error("设置默认模板失败",
			zap.Uint("student_id", studentID),
			zap.Uint("template_id", templateID),
			zap.Error(err))
		return err
	}
	return nil
}

// Delete 删除模板；引用它的表单保留，template_id 置空
func (s *templateService) Delete(ctx context.Context, id uint) error {
	err := s.repo.Template.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTemplateNotFound
		}
		s.logger.Error("删除模板失败", zap.Uint("template_id", id), zap.Error(err))
		return err
	}
	return nil
}

// dedupeIDs 保序去重
func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
