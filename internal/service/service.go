package service

import (
	"go.uber.org/zap"

	"github.com/blakejoy/saccom-app/internal/repository"
)

// Service 服务层聚合
type Service struct {
	Student       StudentService
	Accommodation AccommodationService
	Template      TemplateService
	Form          FormService
	Tracking      TrackingService
	Export        ExportService
}

// NewService 创建服务层聚合实例
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Student:       NewStudentService(repo, logger),
		Accommodation: NewAccommodationService(repo, logger),
		Template:      NewTemplateService(repo, logger),
		Form:          NewFormService(repo, logger),
		Tracking:      NewTrackingService(repo, logger),
		Export:        NewExportService(repo, logger),
	}
}
