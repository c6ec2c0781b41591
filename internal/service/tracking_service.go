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
)

// 每日跟踪服务错误定义
var (
	ErrTrackingNotFound      = errors.New("跟踪记录不存在")
	ErrTrackingInvalidStatus = errors.New("无效的跟踪状态")
	ErrTrackingConflict      = pkgerrors.ErrOptimisticLock
)

// TrackingService 每日跟踪服务接口
// 跟踪行的创建与删除随表单措施关联联动，本服务只负责单元格状态更新
type TrackingService interface {
	GetByID(ctx context.Context, id uint) (*dto.TrackingResponse, error)
	UpdateStatus(ctx context.Context, id uint, req *dto.UpdateTrackingRequest) (*dto.TrackingResponse, error)
}

type trackingService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTrackingService 创建每日跟踪服务实例
func NewTrackingService(repo *repository.Repository, logger *zap.Logger) TrackingService {
	return &trackingService{repo: repo, logger: logger}
}

func (s *trackingService) GetByID(ctx context.Context, id uint) (*dto.TrackingResponse, error) {
	tracking, err := s.repo.Tracking.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrackingNotFound
		}
		s.logger.Error("查询跟踪记录失败", zap.Uint("tracking_id", id), zap.Error(err))
		return nil, err
	}
	return toTrackingResponse(tracking), nil
}

// UpdateStatus 更新单元格状态与备注。
// req.Version 省略时为末写覆盖；携带时做乐观并发检查，
// 版本过期返回 ErrTrackingConflict，调用方应重新拉取后重试。
func (s *trackingService) UpdateStatus(ctx context.Context, id uint, req *dto.UpdateTrackingRequest) (*dto.TrackingResponse, error) {
	if !model.ValidDailyStatus(req.Status) {
		return nil, ErrTrackingInvalidStatus
	}

	tracking, err := s.repo.Tracking.UpdateStatus(ctx, id, req.Status, req.Notes, req.Version)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrackingNotFound
		}
		if errors.Is(err, pkgerrors.ErrOptimisticLock) {
			return nil, ErrTrackingConflict
		}
		s.logger.Error("更新跟踪状态失败",
			zap.Uint("tracking_id", id),
			zap.String("status", req.Status),
			zap.Error(err))
		return nil, err
	}

	return toTrackingResponse(tracking), nil
}
