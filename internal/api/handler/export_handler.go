package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/blakejoy/saccom-app/internal/service"
	"github.com/blakejoy/saccom-app/pkg/response"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	icsContentType  = "text/calendar; charset=utf-8"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportFormSheet 导出单张表单的 xlsx 跟踪网格
// GET /api/v1/export/forms/:id
func (h *ExportHandler) ExportFormSheet(c *gin.Context) {
	formID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportFormSheet(c.Request.Context(), formID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeDownload(c, xlsxContentType, filename, buf.Bytes())
}

// ExportStudentCalendar 导出学生全部表单周的 iCalendar 文件
// GET /api/v1/export/students/:id/calendar
func (h *ExportHandler) ExportStudentCalendar(c *gin.Context) {
	studentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportStudentCalendar(c.Request.Context(), studentID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeDownload(c, icsContentType, filename, buf.Bytes())
}

// writeDownload 设置下载响应头并写出文件内容
func writeDownload(c *gin.Context, contentType, filename string, data []byte) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentType, data)
}

// handleExportError 统一处理导出模块业务错误
func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrFormNotFound):
		response.NotFound(c, 14001, "表单不存在")
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 11001, "学生不存在")
	case errors.Is(err, service.ErrExportNoForms):
		response.NotFound(c, 16001, "该学生暂无表单可导出")
	case errors.Is(err, service.ErrExportGenerate):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
