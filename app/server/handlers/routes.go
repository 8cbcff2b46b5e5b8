package handlers

import (
	"webafan-portfolio/app/server/models"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes 绑定所有端点。公开路由不做认证检查，
// 其余端点在 handler 内通过 authUser 做授权判断。
func (a *App) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/health", a.HealthCheck)

	// 认证
	auth := api.Group("/auth")
	auth.POST("/login", a.AuthLogin)
	auth.POST("/validate", a.AuthValidate)

	// 档案
	profiles := api.Group("/profiles")
	profiles.GET("", a.ProfileList)
	profiles.GET("/public", a.ProfilePublic)
	profiles.GET("/email/:email", a.ProfileGetByEmail)
	profiles.GET("/check-email/:email", a.ProfileCheckEmail)
	profiles.GET("/:id", a.ProfileGet)
	profiles.POST("", a.ProfileCreate)
	profiles.PUT("/:id", a.ProfileUpdate)
	profiles.DELETE("/:id", a.ProfileDelete)

	// 项目
	projects := api.Group("/projects")
	projects.GET("", a.ProjectList)
	projects.GET("/public/all", a.ProjectPublicAll)
	projects.GET("/public/current", a.ProjectPublicByStatus(models.ProjectStatusCurrent))
	projects.GET("/public/finished", a.ProjectPublicByStatus(models.ProjectStatusFinished))
	projects.GET("/public/featured", a.ProjectPublicFeatured)
	projects.GET("/public/:id", a.ProjectGet)
	projects.GET("/current", a.ProjectPublicByStatus(models.ProjectStatusCurrent))
	projects.GET("/finished", a.ProjectPublicByStatus(models.ProjectStatusFinished))
	projects.GET("/:id", a.ProjectGet)
	projects.POST("", a.ProjectCreate)
	projects.PUT("/:id", a.ProjectUpdate)
	projects.PATCH("/:id/status", a.ProjectUpdateStatus)
	projects.PATCH("/:id/progress", a.ProjectUpdateProgress)
	projects.DELETE("/:id", a.ProjectDelete)

	// 技能
	skills := api.Group("/skills")
	skills.GET("", a.SkillList)
	skills.GET("/featured", a.SkillFeatured)
	skills.GET("/categories", a.SkillCategories)
	skills.GET("/category/:category", a.SkillListByCategory)
	skills.GET("/profile/:profileId", a.SkillListByProfile)
	skills.GET("/:id", a.SkillGet)
	skills.POST("", a.SkillCreate)
	skills.PUT("/:id", a.SkillUpdate)
	skills.DELETE("/:id", a.SkillDelete)

	// 教育经历
	educations := api.Group("/educations")
	educations.GET("", a.EducationList)
	educations.GET("/:id", a.EducationGet)
	educations.POST("", a.EducationCreate)
	educations.PUT("/:id", a.EducationUpdate)
	educations.DELETE("/:id", a.EducationDelete)

	// 工作经历
	experiences := api.Group("/experiences")
	experiences.GET("", a.ExperienceList)
	experiences.GET("/current", a.ExperienceCurrent)
	experiences.GET("/profile/:profileId", a.ExperienceListByProfile)
	experiences.GET("/:id", a.ExperienceGet)
	experiences.POST("", a.ExperienceCreate)
	experiences.PUT("/:id", a.ExperienceUpdate)
	experiences.DELETE("/:id", a.ExperienceDelete)

	// 成就
	achievements := api.Group("/achievements")
	achievements.GET("", a.AchievementList)
	achievements.GET("/featured", a.AchievementFeatured)
	achievements.GET("/:id", a.AchievementGet)
	achievements.POST("", a.AchievementCreate)
	achievements.PUT("/:id", a.AchievementUpdate)
	achievements.DELETE("/:id", a.AchievementDelete)

	// 联系表单
	contacts := api.Group("/contacts")
	contacts.POST("/submit", a.ContactSubmit)
	contacts.GET("/admin", a.ContactList)
	contacts.GET("/admin/recent", a.ContactRecent)
	contacts.GET("/admin/stats", a.ContactStats)
	contacts.GET("/admin/:id", a.ContactGet)
	contacts.POST("/admin/:id/resend-whatsapp", a.ContactResendWhatsApp)
	contacts.DELETE("/admin/:id", a.ContactDelete)

	// 文件上传
	upload := api.Group("/upload")
	upload.POST("/image", a.UploadImage)
	upload.POST("/cv", a.UploadCV)
	upload.GET("/files/:filename", a.FileGet)
	upload.HEAD("/files/:filename", a.FileHead)
	upload.DELETE("/files/:filename", a.FileDelete)
}
