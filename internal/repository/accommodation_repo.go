package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/blakejoy/saccom-app/internal/model"
)

// AccommodationRepository 支持措施数据访问接口
type AccommodationRepository interface {
	Create(ctx context.Context, accommodation *model.Accommodation) error
	GetByID(ctx context.Context, id uint) (*model.Accommodation, error)
	List(ctx context.Context, includeInactive bool) ([]model.Accommodation, error)
	CountByIDs(ctx context.Context, ids []uint) (int64, error)
	MaxSortOrder(ctx context.Context) (int, error)
	Update(ctx context.Context, accommodation *model.Accommodation) error
	SetActive(ctx context.Context, id uint, active bool) error
	Delete(ctx context.Context, id uint) error
}

type accommodationRepo struct {
	db *gorm.DB
}

// NewAccommodationRepo 创建 AccommodationRepository 实例
func NewAccommodationRepo(db *gorm.DB) AccommodationRepository {
	return &accommodationRepo{db: db}
}

func (r *accommodationRepo) Create(ctx context.Context, accommodation *model.Accommodation) error {
	return r.db.WithContext(ctx).Create(accommodation).Error
}

func (r *accommodationRepo) GetByID(ctx context.Context, id uint) (*model.Accommodation, error) {
	var accommodation model.Accommodation
	err := r.db.WithContext(ctx).First(&accommodation, id).Error
	if err != nil {
		return nil, err
	}
	return &accommodation, nil
}

// List 按 sort_order 升序返回措施；默认仅含启用项
func (r *accommodationRepo) List(ctx context.Context, includeInactive bool) ([]model.Accommodation, error) {
	q := r.db.WithContext(ctx).Model(&model.Accommodation{})
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}

	var accommodations []model.Accommodation
	err := q.Order("sort_order ASC, id ASC").Find(&accommodations).Error
	return accommodations, err
}

// CountByIDs 统计给定 ID 中实际存在的措施数（用于建表单前的引用校验）
func (r *accommodationRepo) CountByIDs(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Accommodation{}).
		Where("id IN ?", ids).
		Count(&count).Error
	return count, err
}

// MaxSortOrder 返回当前最大排序号；无记录时返回 -1
func (r *accommodationRepo) MaxSortOrder(ctx context.Context) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).
		Model(&model.Accommodation{}).
		Select("MAX(sort_order)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return -1, nil
	}
	return *max, nil
}

func (r *accommodationRepo) Update(ctx context.Context, accommodation *model.Accommodation) error {
	return r.db.WithContext(ctx).Save(accommodation).Error
}

func (r *accommodationRepo) SetActive(ctx context.Context, id uint, active bool) error {
	result := r.db.WithContext(ctx).
		Model(&model.Accommodation{}).
		Where("id = ?", id).
		Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete 硬删除措施；表单/模板上的关联行由外键级联清除
func (r *accommodationRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Accommodation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
