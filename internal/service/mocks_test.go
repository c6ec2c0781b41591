package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/blakejoy/saccom-app/internal/model"
	"github.com/blakejoy/saccom-app/internal/repository"
)

// 手写 mock：按方法挂接函数字段，未挂接的方法返回零值

type mockStudentRepo struct {
	createFn      func(ctx context.Context, student *model.Student) error
	getByIDFn     func(ctx context.Context, id uint) (*model.Student, error)
	existsFn      func(ctx context.Context, id uint) (bool, error)
	listFn        func(ctx context.Context, search string, includeArchived bool) ([]model.Student, error)
	setArchivedFn func(ctx context.Context, id uint, archived bool) error
	deleteFn      func(ctx context.Context, id uint) error
}

func (m *mockStudentRepo) Create(ctx context.Context, student *model.Student) error {
	if m.createFn != nil {
		return m.createFn(ctx, student)
	}
	return nil
}

func (m *mockStudentRepo) GetByID(ctx context.Context, id uint) (*model.Student, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) Exists(ctx context.Context, id uint) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return false, nil
}

func (m *mockStudentRepo) List(ctx context.Context, search string, includeArchived bool) ([]model.Student, error) {
	if m.listFn != nil {
		return m.listFn(ctx, search, includeArchived)
	}
	return nil, nil
}

func (m *mockStudentRepo) SetArchived(ctx context.Context, id uint, archived bool) error {
	if m.setArchivedFn != nil {
		return m.setArchivedFn(ctx, id, archived)
	}
	return nil
}

func (m *mockStudentRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockAccommodationRepo struct {
	createFn       func(ctx context.Context, accommodation *model.Accommodation) error
	getByIDFn      func(ctx context.Context, id uint) (*model.Accommodation, error)
	listFn         func(ctx context.Context, includeInactive bool) ([]model.Accommodation, error)
	countByIDsFn   func(ctx context.Context, ids []uint) (int64, error)
	maxSortOrderFn func(ctx context.Context) (int, error)
	updateFn       func(ctx context.Context, accommodation *model.Accommodation) error
	setActiveFn    func(ctx context.Context, id uint, active bool) error
	deleteFn       func(ctx context.Context, id uint) error
}

func (m *mockAccommodationRepo) Create(ctx context.Context, accommodation *model.Accommodation) error {
	if m.createFn != nil {
		return m.createFn(ctx, accommodation)
	}
	return nil
}

func (m *mockAccommodationRepo) GetByID(ctx context.Context, id uint) (*model.Accommodation, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAccommodationRepo) List(ctx context.Context, includeInactive bool) ([]model.Accommodation, error) {
	if m.listFn != nil {
		return m.listFn(ctx, includeInactive)
	}
	return nil, nil
}

func (m *mockAccommodationRepo) CountByIDs(ctx context.Context, ids []uint) (int64, error) {
	if m.countByIDsFn != nil {
		return m.countByIDsFn(ctx, ids)
	}
	return 0, nil
}

func (m *mockAccommodationRepo) MaxSortOrder(ctx context.Context) (int, error) {
	if m.maxSortOrderFn != nil {
		return m.maxSortOrderFn(ctx)
	}
	return -1, nil
}

func (m *mockAccommodationRepo) Update(ctx context.Context, accommodation *model.Accommodation) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, accommodation)
	}
	return nil
}

func (m *mockAccommodationRepo) SetActive(ctx context.Context, id uint, active bool) error {
	if m.setActiveFn != nil {
		return m.setActiveFn(ctx, id, active)
	}
	return nil
}

func (m *mockAccommodationRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockTemplateRepo struct {
	createWithAccommodationsFn func(ctx context.Context, template *model.Template, accommodationIDs []uint) error
	getByIDFn                  func(ctx context.Context, id uint) (*model.Template, error)
	existsFn                   func(ctx context.Context, id uint) (bool, error)
	listByStudentFn            func(ctx context.Context, studentID uint) ([]model.Template, error)
	setDefaultFn               func(ctx context.Context, studentID, templateID uint) error
	deleteFn                   func(ctx context.Context, id uint) error
}

func (m *mockTemplateRepo) CreateWithAccommodations(ctx context.Context, template *model.Template, accommodationIDs []uint) error {
	if m.createWithAccommodationsFn != nil {
		return m.createWithAccommodationsFn(ctx, template, accommodationIDs)
	}
	return nil
}

func (m *mockTemplateRepo) GetByID(ctx context.Context, id uint) (*model.Template, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTemplateRepo) Exists(ctx context.Context, id uint) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return false, nil
}

func (m *mockTemplateRepo) ListByStudent(ctx context.Context, studentID uint) ([]model.Template, error) {
	if m.listByStudentFn != nil {
		return m.listByStudentFn(ctx, studentID)
	}
	return nil, nil
}

func (m *mockTemplateRepo) SetDefault(ctx context.Context, studentID, templateID uint) error {
	if m.setDefaultFn != nil {
		return m.setDefaultFn(ctx, studentID, templateID)
	}
	return nil
}

func (m *mockTemplateRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockFormRepo struct {
	createWithAccommodationsFn func(ctx context.Context, form *model.Form, accommodationIDs []uint) error
	getByIDFn                  func(ctx context.Context, id uint) (*model.Form, error)
	getWithAccommodationsFn    func(ctx context.Context, id uint) (*model.Form, error)
	listByStudentFn            func(ctx context.Context, studentID uint) ([]model.Form, error)
	deleteFn                   func(ctx context.Context, id uint) error
	pairExistsFn               func(ctx context.Context, formID, accommodationID uint) (bool, error)
	addAccommodationFn         func(ctx context.Context, formID, accommodationID uint) (*model.FormAccommodation, error)
	removeAccommodationFn      func(ctx context.Context, formAccommodationID uint) error
}

func (m *mockFormRepo) CreateWithAccommodations(ctx context.Context, form *model.Form, accommodationIDs []uint) error {
	if m.createWithAccommodationsFn != nil {
		return m.createWithAccommodationsFn(ctx, form, accommodationIDs)
	}
	return nil
}

func (m *mockFormRepo) GetByID(ctx context.Context, id uint) (*model.Form, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFormRepo) GetWithAccommodations(ctx context.Context, id uint) (*model.Form, error) {
	if m.getWithAccommodationsFn != nil {
		return m.getWithAccommodationsFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFormRepo) ListByStudent(ctx context.Context, studentID uint) ([]model.Form, error) {
	if m.listByStudentFn != nil {
		return m.listByStudentFn(ctx, studentID)
	}
	return nil, nil
}

func (m *mockFormRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockFormRepo) AccommodationPairExists(ctx context.Context, formID, accommodationID uint) (bool, error) {
	if m.pairExistsFn != nil {
		return m.pairExistsFn(ctx, formID, accommodationID)
	}
	return false, nil
}

func (m *mockFormRepo) AddAccommodation(ctx context.Context, formID, accommodationID uint) (*model.FormAccommodation, error) {
	if m.addAccommodationFn != nil {
		return m.addAccommodationFn(ctx, formID, accommodationID)
	}
	return &model.FormAccommodation{FormID: formID, AccommodationID: accommodationID}, nil
}

func (m *mockFormRepo) RemoveAccommodation(ctx context.Context, formAccommodationID uint) error {
	if m.removeAccommodationFn != nil {
		return m.removeAccommodationFn(ctx, formAccommodationID)
	}
	return nil
}

type mockTrackingRepo struct {
	getByIDFn                 func(ctx context.Context, id uint) (*model.DailyTracking, error)
	listByFormAccommodationFn func(ctx context.Context, formAccommodationID uint) ([]model.DailyTracking, error)
	updateStatusFn            func(ctx context.Context, id uint, status string, notes *string, expectedVersion *int) (*model.DailyTracking, error)
}

func (m *mockTrackingRepo) GetByID(ctx context.Context, id uint) (*model.DailyTracking, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTrackingRepo) ListByFormAccommodation(ctx context.Context, formAccommodationID uint) ([]model.DailyTracking, error) {
	if m.listByFormAccommodationFn != nil {
		return m.listByFormAccommodationFn(ctx, formAccommodationID)
	}
	return nil, nil
}

func (m *mockTrackingRepo) UpdateStatus(ctx context.Context, id uint, status string, notes *string, expectedVersion *int) (*model.DailyTracking, error) {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, id, status, notes, expectedVersion)
	}
	return nil, gorm.ErrRecordNotFound
}

// newTestRepository 组装用于单测的 Repository；未提供的仓储用空 mock 兜底
func newTestRepository(student *mockStudentRepo, accommodation *mockAccommodationRepo, template *mockTemplateRepo, form *mockFormRepo, tracking *mockTrackingRepo) *repository.Repository {
	if student == nil {
		student = &mockStudentRepo{}
	}
	if accommodation == nil {
		accommodation = &mockAccommodationRepo{}
	}
	if template == nil {
		template = &mockTemplateRepo{}
	}
	if form == nil {
		form = &mockFormRepo{}
	}
	if tracking == nil {
		tracking = &mockTrackingRepo{}
	}
	return &repository.Repository{
		Student:       student,
		Accommodation: accommodation,
		Template:      template,
		Form:          form,
		Tracking:      tracking,
	}
}
