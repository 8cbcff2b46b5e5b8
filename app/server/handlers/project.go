package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"webafan-portfolio/app/server/constants"
	"webafan-portfolio/app/server/models"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type projectInput struct {
	Title                *string    `json:"title"`
	Description          *string    `json:"description"`
	ShortDescription     *string    `json:"shortDescription"`
	StartDate            *time.Time `json:"startDate"`
	EndDate              *time.Time `json:"endDate"`
	Status               *string    `json:"status"`
	ProjectURL           *string    `json:"projectUrl"`
	GithubURL            *string    `json:"githubUrl"`
	DemoURL              *string    `json:"demoUrl"`
	ImageURL             *string    `json:"imageUrl"`
	Technologies         *[]string  `json:"technologies"`
	Features             *[]string  `json:"features"`
	ClientName           *string    `json:"clientName"`
	TeamSize             *int       `json:"teamSize"`
	MyRole               *string    `json:"myRole"`
	CompletionPercentage *int       `json:"completionPercentage"`
	IsFeatured           *bool      `json:"isFeatured"`
	DisplayOrder         *int       `json:"displayOrder"`
	ProfileID            *uint      `json:"profileId"`
}

func (a *App) projectMapFields(req *projectInput, project *models.Project) {
	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.ShortDescription != nil {
		project.ShortDescription = *req.ShortDescription
	}
	if req.StartDate != nil {
		project.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = req.EndDate
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.ProjectURL != nil {
		project.ProjectURL = *req.ProjectURL
	}
	if req.GithubURL != nil {
		project.GithubURL = *req.GithubURL
	}
	if req.DemoURL != nil {
		project.DemoURL = *req.DemoURL
	}
	if req.ImageURL != nil {
		project.ImageURL = *req.ImageURL
	}
	if req.Technologies != nil {
		project.Technologies = *req.Technologies
	}
	if req.Features != nil {
		project.Features = *req.Features
	}
	if req.ClientName != nil {
		project.ClientName = *req.ClientName
	}
	if req.TeamSize != nil {
		project.TeamSize = *req.TeamSize
	}
	if req.MyRole != nil {
		project.MyRole = *req.MyRole
	}
	if req.CompletionPercentage != nil {
		project.CompletionPercentage = *req.CompletionPercentage
	}
	if req.IsFeatured != nil {
		project.IsFeatured = *req.IsFeatured
	}
	if req.DisplayOrder != nil {
		project.DisplayOrder = *req.DisplayOrder
	}
	if req.ProfileID != nil {
		project.ProfileID = *req.ProfileID
	}
}

func (a *App) ProjectList(c echo.Context) error {
	rctx := c.Request().Context()

	var projects []models.Project
	if err := a.db.WithContext(rctx).Order("display_order ASC, id ASC").Find(&projects).Error; err != nil {
		a.l.Error("failed to get project list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, projects)
}

func (a *App) ProjectPublicAll(c echo.Context) error {
	rctx := c.Request().Context()

	return a.cachedJSON(c, constants.CacheKeyProjects, func() (any, error) {
		var projects []models.Project
		if err := a.db.WithContext(rctx).Order("display_order ASC, id ASC").Find(&projects).Error; err != nil {
			return nil, err
		}
		return projects, nil
	})
}

func (a *App) ProjectPublicByStatus(status string) echo.HandlerFunc {
	return func(c echo.Context) error {
		rctx := c.Request().Context()

		var projects []models.Project
		if err := a.db.WithContext(rctx).Where("status = ?", status).Order("display_order ASC, id ASC").Find(&projects).Error; err != nil {
			a.l.Error("failed to get project list", zap.String("status", status), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}

		return c.JSON(http.StatusOK, projects)
	}
}

func (a *App) ProjectPublicFeatured(c echo.Context) error {
	rctx := c.Request().Context()

	var projects []models.Project
	if err := a.db.WithContext(rctx).Where("is_featured = true").Order("display_order ASC, id ASC").Find(&projects).Error; err != nil {
		a.l.Error("failed to get featured projects", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, projects)
}

func (a *App) ProjectGet(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	var project models.Project
	if err := a.db.WithContext(rctx).First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get project", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	return c.JSON(http.StatusOK, &project)
}

func (a *App) ProjectCreate(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req projectInput
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 创建
	var project models.Project
	a.projectMapFields(&req, &project)

	// 检查 profile id
	if project.ProfileID != 0 {
		if err, statusCode := validateIDs[models.Profile](a.db.WithContext(rctx), []uint{project.ProfileID}); err != nil {
			a.l.Error("failed to validate profile", zap.Error(err))
			return a.er(c, statusCode)
		}
	}

	if err := a.db.WithContext(rctx).Create(&project).Error; err != nil {
		a.l.Error("failed to create project", zap.Any("project", project), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.dropCache(c, constants.CacheKeyProjects)

	return c.JSON(http.StatusCreated, &project)
}

func (a *App) ProjectUpdate(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req projectInput
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 从数据库中获得指定的项目
	var project models.Project
	if err := a.db.WithContext(rctx).First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get project", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	a.projectMapFields(&req, &project)

	// 检查 profile id
	if project.ProfileID != 0 {
		if err, statusCode := validateIDs[models.Profile](a.db.WithContext(rctx), []uint{project.ProfileID}); err != nil {
			a.l.Error("failed to validate profile", zap.Error(err))
			return a.er(c, statusCode)
		}
	}

	// 更新项目
	if err := a.db.WithContext(rctx).Updates(&project).Error; err != nil {
		a.l.Error("failed to update project", zap.Any("project", project), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.dropCache(c, constants.CacheKeyProjects)

	return c.JSON(http.StatusOK, &project)
}

type projectStatusRequest struct {
	Status string `json:"status"`
}

// ProjectUpdateStatus 只切换项目状态。标记为 FINISHED 时进度同步置为 100 。
func (a *App) ProjectUpdateStatus(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req projectStatusRequest
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	status := strings.ToUpper(req.Status)
	switch status {
	case models.ProjectStatusCurrent, models.ProjectStatusFinished, models.ProjectStatusPaused:
	default:
		return a.er(c, http.StatusBadRequest)
	}

	// 从数据库中获得指定的项目
	var project models.Project
	if err := a.db.WithContext(rctx).First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get project", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	project.Status = status
	updates := map[string]any{"status": status}
	if status == models.ProjectStatusFinished {
		project.CompletionPercentage = 100
		updates["completion_percentage"] = 100
	}

	if err := a.db.WithContext(rctx).Model(&project).Updates(updates).Error; err != nil {
		a.l.Error("failed to update project status", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.dropCache(c, constants.CacheKeyProjects)

	return c.JSON(http.StatusOK, &project)
}

type projectProgressRequest struct {
	CompletionPercentage *int `json:"completionPercentage"`
}

// ProjectUpdateProgress 更新完成进度，跨过 100 时联动状态：
// 达到 100 置为 FINISHED ，从 100 回落时已完成的项目回到 CURRENT 。
func (a *App) ProjectUpdateProgress(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req projectProgressRequest
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if req.CompletionPercentage == nil || *req.CompletionPercentage < 0 {
		return a.er(c, http.StatusBadRequest)
	}

	// 从数据库中获得指定的项目
	var project models.Project
	if err := a.db.WithContext(rctx).First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get project", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	project.CompletionPercentage = *req.CompletionPercentage
	updates := map[string]any{"completion_percentage": project.CompletionPercentage}
	if project.CompletionPercentage >= 100 {
		project.Status = models.ProjectStatusFinished
		updates["status"] = models.ProjectStatusFinished
	} else if project.Status == models.ProjectStatusFinished {
		project.Status = models.ProjectStatusCurrent
		updates["status"] = models.ProjectStatusCurrent
	}

	if err := a.db.WithContext(rctx).Model(&project).Updates(updates).Error; err != nil {
		a.l.Error("failed to update project progress", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.dropCache(c, constants.CacheKeyProjects)

	return c.JSON(http.StatusOK, &project)
}

func (a *App) ProjectDelete(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	// 删除项目
	if err := a.db.WithContext(rctx).Delete(&models.Project{}, id).Error; err != nil {
		a.l.Error("failed to delete project", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.dropCache(c, constants.CacheKeyProjects)

	return c.NoContent(http.StatusOK)
}
