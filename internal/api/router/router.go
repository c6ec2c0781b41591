package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/blakejoy/saccom-app/config"
	"github.com/blakejoy/saccom-app/internal/api/handler"
	"github.com/blakejoy/saccom-app/internal/api/middleware"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 学生模块
		students := v1.Group("/students")
		{
			students.GET("", h.Student.ListStudents)
			students.GET("/:id", h.Student.GetStudent)
			students.POST("", h.Student.CreateStudent)
			students.PUT("/:id/archive", h.Student.ArchiveStudent)
			students.PUT("/:id/unarchive", h.Student.UnarchiveStudent)
			students.DELETE("/:id", h.Student.DeleteStudent)

			// 学生名下的表单与模板
			students.GET("/:id/forms", h.Form.ListStudentForms)
			students.GET("/:id/templates", h.Template.ListStudentTemplates)
		}

		// 支持措施目录
		accommodations := v1.Group("/accommodations")
		{
			accommodations.GET("", h.Accommodation.ListAccommodations)
			accommodations.GET("/:id", h.Accommodation.GetAccommodation)
			accommodations.POST("", h.Accommodation.CreateAccommodation)
			accommodations.PUT("/:id", h.Accommodation.UpdateAccommodation)
			accommodations.PUT("/:id/deactivate", h.Accommodation.DeactivateAccommodation)
			accommodations.PUT("/:id/activate", h.Accommodation.ActivateAccommodation)
			accommodations.DELETE("/:id", h.Accommodation.DeleteAccommodation)
		}

		// 措施模板模块
		templates := v1.Group("/templates")
		{
			templates.GET("/:id", h.Template.GetTemplate)
			templates.POST("", h.Template.CreateTemplate)
			templates.PUT("/:id/default", h.Template.SetDefaultTemplate)
			templates.DELETE("/:id", h.Template.DeleteTemplate)
		}

		// 周表单模块
		forms := v1.Group("/forms")
		{
			forms.GET("/:id", h.Form.GetForm)
			forms.POST("", h.Form.CreateForm)
			forms.POST("/:id/duplicate", h.Form.DuplicateForm)
			forms.DELETE("/:id", h.Form.DeleteForm)
			forms.POST("/:id/accommodations", h.Form.AddFormAccommodation)
		}
		v1.DELETE("/form-accommodations/:id", h.Form.RemoveFormAccommodation)

		// 每日跟踪模块
		tracking := v1.Group("/tracking")
		{
			tracking.GET("/:id", h.Tracking.GetTracking)
			tracking.PUT("/:id", h.Tracking.UpdateTracking)
		}

		// 导出模块
		export := v1.Group("/export")
		{
			export.GET("/forms/:id/sheet", h.Export.ExportFormSheet)
			export.GET("/students/:id/calendar", h.Export.ExportStudentCalendar)
		}
	}

	return r
}
