package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/blakejoy/saccom-app/internal/model"
)

// recentFormsLimit 学生详情附带的最近表单数量上限
const recentFormsLimit = 20

// StudentRepository 学生数据访问接口
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	GetByID(ctx context.Context, id uint) (*model.Student, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, search string, includeArchived bool) ([]model.Student, error)
	SetArchived(ctx context.Context, id uint, archived bool) error
	Delete(ctx context.Context, id uint) error
}

type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo 创建 StudentRepository 实例
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

// GetByID 查询学生及其最近 20 张表单（年份、周次倒序）与全部模板
func (r *studentRepo) GetByID(ctx context.Context, id uint) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Preload("Forms", func(db *gorm.DB) *gorm.DB {
			return db.Order("year DESC, week_number DESC").Limit(recentFormsLimit)
		}).
		Preload("Templates").
		First(&student, id).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Student{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *studentRepo) List(ctx context.Context, search string, includeArchived bool) ([]model.Student, error) {
	q := r.db.WithContext(ctx).Model(&model.Student{})
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("student_number LIKE ? OR initials LIKE ?", pattern, pattern)
	}
	if !includeArchived {
		q = q.Where("is_archived = ?", false)
	}

	var students []model.Student
	err := q.Order("created_at DESC").Find(&students).Error
	return students, err
}

func (r *studentRepo) SetArchived(ctx context.Context, id uint, archived bool) error {
	result := r.db.WithContext(ctx).
		Model(&model.Student{}).
		Where("id = ?", id).
		Update("is_archived", archived)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete 硬删除学生；表单、模板及其下游跟踪行由外键级联清除
func (r *studentRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Student{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
