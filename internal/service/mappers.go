package service

import (
	"time"

	"github.com/blakejoy/saccom-app/internal/dto"
	"github.com/blakejoy/saccom-app/internal/model"
	"github.com/blakejoy/saccom-app/pkg/weekcal"
)

// 模型到响应 DTO 的转换；各服务共用

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func toStudentResponse(student *model.Student) *dto.StudentResponse {
	return &dto.StudentResponse{
		ID:            student.ID,
		StudentNumber: student.StudentNumber,
		Initials:      student.Initials,
		IsArchived:    student.IsArchived,
		CreatedAt:     formatTime(student.CreatedAt),
		UpdatedAt:     formatTime(student.UpdatedAt),
	}
}

func toAccommodationResponse(acc *model.Accommodation) *dto.AccommodationResponse {
	return &dto.AccommodationResponse{
		ID:        acc.ID,
		Name:      acc.Name,
		Category:  acc.Category,
		SortOrder: acc.SortOrder,
		IsActive:  acc.IsActive,
	}
}

func toTemplateResponse(template *model.Template) *dto.TemplateResponse {
	return &dto.TemplateResponse{
		ID:           template.ID,
		StudentID:    template.StudentID,
		TemplateName: template.TemplateName,
		IsDefault:    template.IsDefault,
		CreatedAt:    formatTime(template.CreatedAt),
		UpdatedAt:    formatTime(template.UpdatedAt),
	}
}

func toTemplateDetailResponse(template *model.Template) *dto.TemplateDetailResponse {
	accommodations := make([]dto.AccommodationResponse, 0, len(template.TemplateAccommodations))
	for i := range template.TemplateAccommodations {
		if acc := template.TemplateAccommodations[i].Accommodation; acc != nil {
			accommodations = append(accommodations, *toAccommodationResponse(acc))
		}
	}
	return &dto.TemplateDetailResponse{
		TemplateResponse: *toTemplateResponse(template),
		Accommodations:   accommodations,
	}
}

func toFormResponse(form *model.Form) *dto.FormResponse {
	return &dto.FormResponse{
		ID:         form.ID,
		StudentID:  form.StudentID,
		WeekNumber: form.WeekNumber,
		Year:       form.Year,
		StartDate:  form.StartDate,
		WeekRange:  weekcal.FormatWeekRange(weekcal.MondayOfWeek(form.WeekNumber, form.Year)),
		IsSas:      form.IsSas,
		TemplateID: form.TemplateID,
		CreatedAt:  formatTime(form.CreatedAt),
		UpdatedAt:  formatTime(form.UpdatedAt),
	}
}

func toFormDetailResponse(form *model.Form) *dto.FormDetailResponse {
	detail := &dto.FormDetailResponse{
		FormResponse:       *toFormResponse(form),
		FormAccommodations: make([]dto.FormAccommodationResponse, 0, len(form.FormAccommodations)),
	}
	if form.Student != nil {
		detail.Student = toStudentResponse(form.Student)
	}
	if form.Template != nil {
		detail.Template = toTemplateResponse(form.Template)
	}
	for i := range form.FormAccommodations {
		detail.FormAccommodations = append(detail.FormAccommodations, *toFormAccommodationResponse(&form.FormAccommodations[i]))
	}
	return detail
}

func toFormAccommodationResponse(link *model.FormAccommodation) *dto.FormAccommodationResponse {
	tracking := make([]dto.TrackingResponse, 0, len(link.DailyTracking))
	for i := range link.DailyTracking {
		tracking = append(tracking, *toTrackingResponse(&link.DailyTracking[i]))
	}
	resp := &dto.FormAccommodationResponse{
		ID:              link.ID,
		FormID:          link.FormID,
		AccommodationID: link.AccommodationID,
		DailyTracking:   tracking,
	}
	if link.Accommodation != nil {
		resp.Accommodation = *toAccommodationResponse(link.Accommodation)
	}
	return resp
}

func toTrackingResponse(tracking *model.DailyTracking) *dto.TrackingResponse {
	return &dto.TrackingResponse{
		ID:                  tracking.ID,
		FormAccommodationID: tracking.FormAccommodationID,
		DayOfWeek:           tracking.DayOfWeek,
		DayName:             weekcal.DayName(tracking.DayOfWeek),
		Status:              tracking.Status,
		Notes:               tracking.Notes,
		Version:             tracking.Version,
		UpdatedAt:           formatTime(tracking.UpdatedAt),
	}
}
