package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/blakejoy/saccom-app/internal/model"
	pkgerrors "github.com/blakejoy/saccom-app/pkg/errors"
)

// TrackingRepository 每日跟踪数据访问接口
// 行的创建/删除归 FormRepository 聚合；本接口只做单行状态更新
type TrackingRepository interface {
	GetByID(ctx context.Context, id uint) (*model.DailyTracking, error)
	ListByFormAccommodation(ctx context.Context, formAccommodationID uint) ([]model.DailyTracking, error)
	UpdateStatus(ctx context.Context, id uint, status string, notes *string, expectedVersion *int) (*model.DailyTracking, error)
}

type trackingRepo struct {
	db *gorm.DB
}

// NewTrackingRepo 创建 TrackingRepository 实例
func NewTrackingRepo(db *gorm.DB) TrackingRepository {
	return &trackingRepo{db: db}
}

func (r *trackingRepo) GetByID(ctx context.Context, id uint) (*model.DailyTracking, error) {
	var tracking model.DailyTracking
	err := r.db.WithContext(ctx).First(&tracking, id).Error
	if err != nil {
		return nil, err
	}
	return &tracking, nil
}

func (r *trackingRepo) ListByFormAccommodation(ctx context.Context, formAccommodationID uint) ([]model.DailyTracking, error) {
	var rows []model.DailyTracking
	err := r.db.WithContext(ctx).
		Where("form_accommodation_id = ?", formAccommodationID).
		Order("day_of_week ASC").
		Find(&rows).Error
	return rows, err
}

// UpdateStatus 更新单元格状态与备注，刷新 updated_at 并递增 version。
// expectedVersion 非空时按版本号条件更新：版本已过期返回 ErrOptimisticLock；
// 为空时保持末写覆盖语义（桌面源行为）。
func (r *trackingRepo) UpdateStatus(ctx context.Context, id uint, status string, notes *string, expectedVersion *int) (*model.DailyTracking, error) {
	q := r.db.WithContext(ctx).
		Model(&model.DailyTracking{}).
		Where("id = ?", id)
	if expectedVersion != nil {
		q = q.Where("version = ?", *expectedVersion)
	}

	result := q.Updates(map[string]interface{}{
		"status":  status,
		"notes":   notes,
		"version": gorm.Expr("version + 1"),
	})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		// 区分：行不存在 vs 版本过期
		var exists model.DailyTracking
		err := r.db.WithContext(ctx).First(&exists, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		if err != nil {
			return nil, err
		}
		return nil, pkgerrors.ErrOptimisticLock
	}

	return r.GetByID(ctx, id)
}
