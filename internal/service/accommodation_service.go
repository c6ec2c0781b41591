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

// 支持措施服务错误定义
var (
	ErrAccommodationNotFound   = errors.New("支持措施不存在")
	ErrAccommodationNameExists = errors.New("措施名称已存在")
)

// AccommodationService 支持措施服务接口
type AccommodationService interface {
	Create(ctx context.Context, req *dto.CreateAccommodationRequest) (*dto.AccommodationResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.AccommodationResponse, error)
	List(ctx context.Context, includeInactive bool) ([]dto.AccommodationResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateAccommodationRequest) (*dto.AccommodationResponse, error)
	Deactivate(ctx context.Context, id uint) error
	Activate(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

type accommodationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAccommodationService 创建支持措施服务实例
func NewAccommodationService(repo *repository.Repository, logger *zap.Logger) AccommodationService {
	return &accommodationService{repo: repo, logger: logger}
}

// Create 创建措施；SortOrder 省略时取当前最大排序值 +1
func (s *accommodationService) Create(ctx context.Context, req *dto.CreateAccommodationRequest) (*dto.AccommodationResponse, error) {
	sortOrder := 0
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	} else {
		max, err := s.repo.Accommodation.MaxSortOrder(ctx)
		if err != nil {
			s.logger.Error("查询措施最大排序值失败", zap.Error(err))
			return nil, err
		}
		sortOrder = max + 1
	}

	acc := &model.Accommodation{
		Name:      req.Name,
		Category:  req.Category,
		SortOrder: sortOrder,
		IsActive:  true,
	}
	if err := s.repo.Accommodation.Create(ctx, acc); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAccommodationNameExists
		}
		s.logger.Error("创建措施失败", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}

	return toAccommodationResponse(acc), nil
}

func (s *accommodationService) GetByID(ctx context.Context, id uint) (*dto.AccommodationResponse, error) {
	acc, err := s.repo.Accommodation.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccommodationNotFound
		}
		s.logger.Error("查询措施失败", zap.Uint("accommodation_id", id), zap.Error(err))
		return nil, err
	}
	return toAccommodationResponse(acc), nil
}

func (s *accommodationService) List(ctx context.Context, includeInactive bool) ([]dto.AccommodationResponse, error) {
	accommodations, err := s.repo.Accommodation.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("查询措施列表失败", zap.Error(err))
		return nil, err
	}

	responses := make([]dto.AccommodationResponse, 0, len(accommodations))
	for i := range accommodations {
		responses = append(responses, *toAccommodationResponse(&accommodations[i]))
	}
	return responses, nil
}

func (s *accommodationService) Update(ctx context.Context, id uint, req *dto.UpdateAccommodationRequest) (*dto.AccommodationResponse, error) {
	acc, err := s.repo.Accommodation.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccommodationNotFound
		}
		s.logger.Error("查询措施失败", zap.Uint("accommodation_id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		acc.Name = *req.Name
	}
	if req.Category != nil {
		acc.Category = req.Category
	}
	if req.SortOrder != nil {
		acc.SortOrder = *req.SortOrder
	}

	if err := s.repo.Accommodation.Update(ctx, acc); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAccommodationNameExists
		}
		s.logger.Error("更新措施失败", zap.Uint("accommodation_id", id), zap.Error(err))
		return nil, err
	}
	return toAccommodationResponse(acc), nil
}

// Deactivate 停用措施；已存在的模板快照与表单关联不受影响
func (s *accommodationService) Deactivate(ctx context.Context, id uint) error {
	return s.setActive(ctx, id, false)
}

func (s *accommodationService) Activate(ctx context.Context, id uint) error {
	return s.setActive(ctx, id, true)
}

func (s *accommodationService) setActive(ctx context.Context, id uint, active bool) error {
	err := s.repo.Accommodation.SetActive(ctx, id, active)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAccommodationNotFound
		}
		s.logger.Error("更新措施启用状态失败", zap.Uint("accommodation_id", id), zap.Bool("active", active), zap.Error(err))
		return err
	}
	return nil
}

// Delete 硬删除措施；其表单关联与跟踪行、模板快照由外键级联清除
func (s *accommodationService) Delete(ctx context.Context, id uint) error {
	err := s.repo.Accommodation.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAccommodationNotFound
		}
		s.logger.Error("删除措施失败", zap.Uint("accommodation_id", id), zap.Error(err))
		return err
	}
	return nil
}
