package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/blakejoy/saccom-app/internal/model"
	pkgerrors "github.com/blakejoy/saccom-app/pkg/errors"
)

// FormRepository 周表单数据访问接口
// 表单及其措施关联、5 天跟踪网格是一个聚合：网格行只经由本层的
// CreateWithAccommodations / AddAccommodation / RemoveAccommodation 产生和消亡
type FormRepository interface {
	CreateWithAccommodations(ctx context.Context, form *model.Form, accommodationIDs []uint) error
	GetByID(ctx context.Context, id uint) (*model.Form, error)
	GetWithAccommodations(ctx context.Context, id uint) (*model.Form, error)
	ListByStudent(ctx context.Context, studentID uint) ([]model.Form, error)
	Delete(ctx context.Context, id uint) error
	AccommodationPairExists(ctx context.Context, formID, accommodationID uint) (bool, error)
	AddAccommodation(ctx context.Context, formID, accommodationID uint) (*model.FormAccommodation, error)
	RemoveAccommodation(ctx context.Context, formAccommodationID uint) error
}

type formRepo struct {
	db *gorm.DB
}

// NewFormRepo 创建 FormRepository 实例
func NewFormRepo(db *gorm.DB) FormRepository {
	return &formRepo{db: db}
}

// CreateWithAccommodations 原子单元：插入表单 → 插入措施关联 → 每个关联插入恰好 5 条 'n/a' 跟踪行
// 仅当 IsSas=false 且措施集非空时才产生关联与网格；任何一步失败整体回滚
func (r *formRepo) CreateWithAccommodations(ctx context.Context, form *model.Form, accommodationIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(form).Error; err != nil {
			return err
		}

		if form.IsSas || len(accommodationIDs) == 0 {
			return nil
		}

		links := make([]model.FormAccommodation, 0, len(accommodationIDs))
		for _, accID := range accommodationIDs {
			links = append(links, model.FormAccommodation{
				FormID:          form.ID,
				AccommodationID: accID,
			})
		}
		if err := tx.Create(&links).Error; err != nil {
			return err
		}

		return createTrackingGrid(tx, links)
	})
}

// createTrackingGrid 为每个措施关联生成周一至周五的跟踪行（状态 'n/a'）
func createTrackingGrid(tx *gorm.DB, links []model.FormAccommodation) error {
	rows := make([]model.DailyTracking, 0, len(links)*model.TrackedDaysPerWeek)
	for _, link := range links {
		for day := 1; day <= model.TrackedDaysPerWeek; day++ {
			rows = append(rows, model.DailyTracking{
				FormAccommodationID: link.ID,
				DayOfWeek:           day,
				Status:              model.DailyStatusNA,
			})
		}
	}
	return tx.Create(&rows).Error
}

// GetByID 查询表单全量关系：学生、模板、措施关联（含措施与按星期升序的跟踪行）
func (r *formRepo) GetByID(ctx context.Context, id uint) (*model.Form, error) {
	var form model.Form
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Template").
		Preload("FormAccommodations.Accommodation").
		Preload("FormAccommodations.DailyTracking", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_of_week ASC")
		}).
		First(&form, id).Error
	if err != nil {
		return nil, err
	}
	return &form, nil
}

// GetWithAccommodations 查询表单及其措施关联（复制表单时只需措施 ID 集）
func (r *formRepo) GetWithAccommodations(ctx context.Context, id uint) (*model.Form, error) {
	var form model.Form
	err := r.db.WithContext(ctx).
		Preload("FormAccommodations").
		First(&form, id).Error
	if err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *formRepo) ListByStudent(ctx context.Context, studentID uint) ([]model.Form, error) {
	var forms []model.Form
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("year ASC, week_number ASC").
		Find(&forms).Error
	return forms, err
}

// Delete 删除表单；措施关联与跟踪行由外键级联清除。删除不存在的 ID 为空操作
func (r *formRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Form{}, id).Error
}

func (r *formRepo) AccommodationPairExists(ctx context.Context, formID, accommodationID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.FormAccommodation{}).
		Where("form_id = ? AND accommodation_id = ?", formID, accommodationID).
		Count(&count).Error
	return count > 0, err
}

// AddAccommodation 原子单元：插入措施关联 + 5 条跟踪行（建表单后的增量添加）
// SAS 表单不得有任何措施关联行，违反时返回 pkgerrors.ErrSasForm
func (r *formRepo) AddAccommodation(ctx context.Context, formID, accommodationID uint) (*model.FormAccommodation, error) {
	link := model.FormAccommodation{
		FormID:          formID,
		AccommodationID: accommodationID,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var form model.Form
		if err := tx.Select("id", "is_sas").First(&form, formID).Error; err != nil {
			return err
		}
		if form.IsSas {
			return pkgerrors.ErrSasForm
		}

		if err := tx.Create(&link).Error; err != nil {
			return err
		}
		return createTrackingGrid(tx, []model.FormAccommodation{link})
	})
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// RemoveAccommodation 删除措施关联；跟踪行由外键级联清除
func (r *formRepo) RemoveAccommodation(ctx context.Context, formAccommodationID uint) error {
	result := r.db.WithContext(ctx).Delete(&model.FormAccommodation{}, formAccommodationID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
