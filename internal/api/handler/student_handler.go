package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/blakejoy/saccom-app/internal/dto"
	"github.com/blakejoy/saccom-app/internal/service"
	"github.com/blakejoy/saccom-app/pkg/response"
)

// StudentHandler 学生模块 HTTP 处理器
type StudentHandler struct {
	studentSvc service.StudentService
}

// NewStudentHandler 创建 StudentHandler
func NewStudentHandler(studentSvc service.StudentService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc}
}

// ListStudents 获取学生列表
// GET /api/v1/students?search=xxx&include_archived=true
func (h *StudentHandler) ListStudents(c *gin.Context) {
	search := c.Query("search")
	includeArchived := c.Query("include_archived") == "true"

	students, err := h.studentSvc.List(c.Request.Context(), search, includeArchived)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": students})
}

// GetStudent 获取学生详情（最近表单与全部模板）
// GET /api/v1/students/:id
func (h *StudentHandler) GetStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	student, err := h.studentSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleStudentError(c, err)
		return
	}

	response.OK(c, student)
}

// CreateStudent 创建学生
// POST /api/v1/students
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	student, err := h.studentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleStudentError(c, err)
		return
	}

	response.Created(c, student)
}

// ArchiveStudent 归档学生
// PUT /api/v1/students/:id/archive
func (h *StudentHandler) ArchiveStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.studentSvc.Archive(c.Request.Context(), id); err != nil {
		h.handleStudentError(c, err)
		return
	}

	response.OK(c, nil)
}

// UnarchiveStudent 取消归档学生
// PUT /api/v1/students/:id/unarchive
func (h *StudentHandler) UnarchiveStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.studentSvc.Unarchive(c.Request.Context(), id); err != nil {
		h.handleStudentError(c, err)
		return
	}

	response.OK(c, nil)
}

// DeleteStudent 硬删除学生及其名下全部数据
// DELETE /api/v1/students/:id
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.studentSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleStudentError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleStudentError 统一处理学生模块业务错误
func (h *StudentHandler) handleStudentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 11001, "学生不存在")
	case errors.Is(err, service.ErrStudentNumberExists):
		response.Conflict(c, 11002, "学号已存在")
	default:
		response.InternalError(c)
	}
}
