package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Student       StudentRepository
	Accommodation AccommodationRepository
	Template      TemplateRepository
	Form          FormRepository
	Tracking      TrackingRepository

	db *gorm.DB
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Student:       NewStudentRepo(db),
		Accommodation: NewAccommodationRepo(db),
		Template:      NewTemplateRepo(db),
		Form:          NewFormRepo(db),
		Tracking:      NewTrackingRepo(db),
		db:            db,
	}
}

// BeginTx 开启事务，返回事务句柄
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	tx := r.db.WithContext(ctx).Begin()
	return tx, tx.Error
}

// WithTx 返回绑定到指定事务的 Repository 副本
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return NewRepository(tx)
}
