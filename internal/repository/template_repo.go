package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/blakejoy/saccom-app/internal/model"
)

// TemplateRepository 措施模板数据访问接口
// 默认模板不变量（同一学生至多一个 is_default=true）由本层事务维护
type TemplateRepository interface {
	CreateWithAccommodations(ctx context.Context, template *model.Template, accommodationIDs []uint) error
	GetByID(ctx context.Context, id uint) (*model.Template, error)
	Exists(ctx context.Context, id uint) (bool, error)
	ListByStudent(ctx context.Context, studentID uint) ([]model.Template, error)
	SetDefault(ctx context.Context, studentID, templateID uint) error
	Delete(ctx context.Context, id uint) error
}

type templateRepo struct {
	db *gorm.DB
}

// NewTemplateRepo 创建 TemplateRepository 实例
func NewTemplateRepo(db *gorm.DB) TemplateRepository {
	return &templateRepo{db: db}
}

// CreateWithAccommodations 原子单元：（设为默认时先清除既有默认）→ 插入模板 → 插入措施快照
func (r *templateRepo) CreateWithAccommodations(ctx context.Context, template *model.Template, accommodationIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if template.IsDefault {
			err := tx.Model(&model.Template{}).
				Where("student_id = ?", template.StudentID).
				Update("is_default", false).Error
			if err != nil {
				return err
			}
		}

		if err := tx.Create(template).Error; err != nil {
			return err
		}

		if len(accommodationIDs) == 0 {
			return nil
		}
		links := make([]model.TemplateAccommodation, 0, len(accommodationIDs))
		for _, accID := range accommodationIDs {
			links = append(links, model.TemplateAccommodation{
				TemplateID:      template.ID,
				AccommodationID: accID,
			})
		}
		return tx.Create(&links).Error
	})
}

func (r *templateRepo) GetByID(ctx context.Context, id uint) (*model.Template, error) {
	var template model.Template
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("TemplateAccommodations.Accommodation").
		First(&template, id).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *templateRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Template{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// ListByStudent 默认模板优先，其后按名称排序
func (r *templateRepo) ListByStudent(ctx context.Context, studentID uint) ([]model.Template, error) {
	var templates []model.Template
	err := r.db.WithContext(ctx).
		Preload("TemplateAccommodations.Accommodation").
		Where("student_id = ?", studentID).
		Order("is_default DESC, template_name ASC").
		Find(&templates).Error
	return templates, err
}

// SetDefault 原子单元：校验归属 → 清除该学生全部默认 → 设置新默认
// templateID 不属于 studentID 时返回 gorm.ErrRecordNotFound，整个单元回滚
func (r *templateRepo) SetDefault(ctx context.Context, studentID, templateID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&model.Template{}).
			Where("id = ? AND student_id = ?", templateID, studentID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}

		err = tx.Model(&model.Template{}).
			Where("student_id = ?", studentID).
			Update("is_default", false).Error
		if err != nil {
			return err
		}

		return tx.Model(&model.Template{}).
			Where("id = ?", templateID).
			Update("is_default", true).Error
	})
}

// Delete 硬删除模板；措施快照由外键级联清除，引用它的表单 template_id 置空
func (r *templateRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Template{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
