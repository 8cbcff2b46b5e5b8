package handlers

import (
	"errors"
	"net/http"
	"time"

	"webafan-portfolio/app/server/constants"
	"webafan-portfolio/app/server/models"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type experienceInput struct {
	JobTitle         *string    `json:"jobTitle"`
	CompanyName      *string    `json:"companyName"`
	CompanyLocation  *string    `json:"companyLocation"`
	StartDate        *time.Time `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	IsCurrent        *bool      `json:"isCurrent"`
	Description      *string    `json:"description"`
	TechnologiesUsed *string    `json:"technologiesUsed"`
	KeyAchievements  *string    `json:"keyAchievements"`
	DisplayOrder     *int       `json:"displayOrder"`
	ProfileID        *uint      `json:"profileId"`
}

func (a *App) experienceMapFields(req *experienceInput, experience *models.Experience) {
	if req.JobTitle != nil {
		experience.JobTitle = *req.JobTitle
	}
	if req.CompanyName != nil {
		experience.CompanyName = *req.CompanyName
	}
	if req.CompanyLocation != nil {
		experience.CompanyLocation = *req.CompanyLocation
	}
	if req.StartDate != nil {
		experience.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		experience.EndDate = req.EndDate
	}
	if req.IsCurrent != nil {
		experience.IsCurrent = *req.IsCurrent
	}
	if req.Description != nil {
		experience.Description = *req.Description
	}
	if req.TechnologiesUsed != nil {
		experience.TechnologiesUsed = *req.TechnologiesUsed
	}
	if req.KeyAchievements != nil {
		experience.KeyAchievements = *req.KeyAchievements
	}
	if req.DisplayOrder != nil {
		experience.DisplayOrder = *req.DisplayOrder
	}
	if req.ProfileID != nil {
		experience.ProfileID = *req.ProfileID
	}
}

func (a *App) ExperienceList(c echo.Context) error {
	rctx := c.Request().Context()

	return a.cachedJSON(c, constants.CacheKeyExperiences, func() (any, error) {
		var experiences []models.Experience
		if err := a.db.WithContext(rctx).Order("display_order ASC, id ASC").Find(&experiences).Error; err != nil {
			return nil, err
		}
		return experiences, nil
	})
}

// ExperienceCurrent 当前在职的工作经历
func (a *App) ExperienceCurrent(c echo.Context) error {
	rctx := c.Request().Context()

	var experiences []models.Experience
	if err := a.db.WithContext(rctx).Where("is_current = true").Order("display_order ASC, id ASC").Find(&experiences).Error; err != nil {
		a.l.Error("failed to get current experiences", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, experiences)
}

func (a *App) ExperienceListByProfile(c echo.Context) error {
	profileID, err := paramID(c, "profileId")
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	var experiences []models.Experience
	if err := a.db.WithContext(rctx).Where("profile_id = ?", profileID).Order("display_order ASC, id ASC").Find(&experiences).Error; err != nil {
		a.l.Error("failed to get experiences by profile", zap.Uint("profileId", profileID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, experiences)
}

func (a *App) ExperienceGet(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	var experience models.Experience
	if err := a.db.WithContext(rctx).First(&experience, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get experience", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	return c.JSON(http.StatusOK, &experience)
}

func (a *App) ExperienceCreate(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req experienceInput
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 创建
	var experience models.Experience
	a.experienceMapFields(&req, &experience)

	// 检查 profile id
	if experience.ProfileID != 0 {
		if err, statusCode := validateIDs[models.Profile](a.db.WithContext(rctx), []uint{experience.ProfileID}); err != nil {
			a.l.Error("failed to validate profile", zap.Error(err))
			return a.er(c, statusCode)
		}
	}

	if err := a.db.WithContext(rctx).Create(&experience).Error; err != nil {
		a.l.Error("failed to create experience", zap.Any("experience", experience), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.dropCache(c, constants.CacheKeyExperiences)

	return c.JSON(http.StatusCreated, &experience)
}

func (a *App) ExperienceUpdate(c echo.Context) error {
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
	var req experienceInput
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 从数据库中获得指定的工作经历
	var experience models.Experience
	if err := a.db.WithContext(rctx).First(&experience, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get experience", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	a.experienceMapFields(&req, &experience)

	// 更新工作经历
	if err := a.db.WithContext(rctx).Updates(&experience).Error; err != nil {
		a.l.Error("failed to update experience", zap.Any("experience", experience), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.dropCache(c, constants.CacheKeyExperiences)

	return c.JSON(http.StatusOK, &experience)
}

func (a *App) ExperienceDelete(c echo.Context) error {
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

	// 删除工作经历
	if err := a.db.WithContext(rctx).Delete(&models.Experience{}, id).Error; err != nil {
		a.l.Error("failed to delete experience", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.dropCache(c, constants.CacheKeyExperiences)

	return c.NoContent(http.StatusOK)
}
