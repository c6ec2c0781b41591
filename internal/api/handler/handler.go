package handler

import "github.com/blakejoy/saccom-app/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Student       *StudentHandler
	Accommodation *AccommodationHandler
	Template      *TemplateHandler
	Form          *FormHandler
	Tracking      *TrackingHandler
	Export        *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Student:       NewStudentHandler(svc.Student),
		Accommodation: NewAccommodationHandler(svc.Accommodation),
		Template:      NewTemplateHandler(svc.Template),
		Form:          NewFormHandler(svc.Form),
		Tracking:      NewTrackingHandler(svc.Tracking),
		Export:        NewExportHandler(svc.Export),
	}
}
