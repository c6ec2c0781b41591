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

// 学生服务错误定义
var (
	ErrStudentNotFound     = errors.New("学生不存在")
	ErrStudentNumberExists = errors.New("学号已存在")
)

// StudentService 学生服务接口
type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.StudentDetailResponse, error)
	List(ctx context.Context, search string, includeArchived bool) ([]dto.StudentResponse, error)
	Archive(ctx context.Context, id uint) error
	Unarchive(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService 创建学生服务实例
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	student := &model.Student{
		StudentNumber: req.StudentNumber,
		Initials:      req.Initials,
	}

	if err := s.repo.Student.Create(ctx, student); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrStudentNumberExists
		}
		s.logger.Error("创建学生失败", zap.String("student_number", req.StudentNumber), zap.Error(err))
		return nil, err
	}

	return toStudentResponse(student), nil
}

// GetByID 返回学生详情：最近表单（年份、周次倒序）与全部模板
func (s *studentService) GetByID(ctx context.Context, id uint) (*dto.StudentDetailResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.Uint("student_id", id), zap.Error(err))
		return nil, err
	}

	detail := &dto.StudentDetailResponse{
		StudentResponse: *toStudentResponse(student),
		Forms:           make([]dto.FormResponse, 0, len(student.Forms)),
		Templates:       make([]dto.TemplateResponse, 0, len(student.Templates)),
	}
	for i := range student.Forms {
		detail.Forms = append(detail.Forms, *toFormResponse(&student.Forms[i]))
	}
	for i := range student.Templates {
		detail.Templates = append(detail.Templates, *toTemplateResponse(&student.Templates[i]))
	}
	return detail, nil
}

func (s *studentService) List(ctx context.Context, search string, includeArchived bool) ([]dto.StudentResponse, error) {
	students, err := s.repo.Student.List(ctx, search, includeArchived)
	if err != nil {
		s.logger.Error("查询学生列表失败", zap.Error(err))
		return nil, err
	}

	responses := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		responses = append(responses, *toStudentResponse(&students[i]))
	}
	return responses, nil
}

func (s *studentService) Archive(ctx context.Context, id uint) error {
	return s.setArchived(ctx, id, true)
}

func (s *studentService) Unarchive(ctx context.Context, id uint) error {
	return s.setArchived(ctx, id, false)
}

func (s *studentService) setArchived(ctx context.Context, id uint, archived bool) error {
	err := s.repo.Student.SetArchived(ctx, id, archived)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error("更新学生归档状态失败", zap.Uint("student_id", id), zap.Bool("archived", archived), zap.Error(err))
		return err
	}
	return nil
}

// Delete 硬删除学生及其名下全部表单、模板与跟踪数据
func (s *studentService) Delete(ctx context.Context, id uint) error {
	err := s.repo.Student.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error("删除学生失败", zap.Uint("student_id", id), zap.Error(err))
		return err
	}
	return nil
}
