package handlers

import (
	"errors"
	"net/http"

	"webafan-portfolio/app/server/constants"
	"webafan-portfolio/app/server/models"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type skillInput struct {
	SkillName        *string `json:"skillName"`
	SkillCategory    *string `json:"skillCategory"`
	ProficiencyLevel *int    `json:"proficiencyLevel"`
	YearsExperience  *int    `json:"yearsExperience"`
	Description      *string `json:"description"`
	IconURL          *string `json:"iconUrl"`
	DisplayOrder     *int    `json:"displayOrder"`
	IsFeatured       *bool   `json:"isFeatured"`
	ProfileID        *uint   `json:"profileId"`
}

func (a *App) skillMapFields(req *skillInput, skill *models.Skill) {
	if req.SkillName != nil {
		skill.SkillName = *req.SkillName
	}
	if req.SkillCategory != nil {
		skill.SkillCategory = *req.SkillCategory
	}
	if req.ProficiencyLevel != nil {
		skill.ProficiencyLevel = *req.ProficiencyLevel
	}
	if req.YearsExperience != nil {
		skill.YearsExperience = *req.YearsExperience
	}
	if req.Description != nil {
		skill.Description = *req.Description
	}
	if req.IconURL != nil {
		skill.IconURL = *req.IconURL
	}
	if req.DisplayOrder != nil {
		skill.DisplayOrder = *req.DisplayOrder
	}
	if req.IsFeatured != nil {
		skill.IsFeatured = *req.IsFeatured
	}
	if req.ProfileID != nil {
		skill.ProfileID = *req.ProfileID
	}
}

func (a *App) SkillList(c echo.Context) error {
	rctx := c.Request().Context()

	return a.cachedJSON(c, constants.CacheKeySkills, func() (any, error) {
		var skills []models.Skill
		if err := a.db.WithContext(rctx).Order("display_order ASC, id ASC").Find(&skills).Error; err != nil {
			return nil, err
		}
		return skills, nil
	})
}

func (a *App) SkillFeatured(c echo.Context) error {
	rctx := c.Request().Context()

	var skills []models.Skill
	if err := a.db.WithContext(rctx).Where("is_featured = true").Order("display_order ASC, id ASC").Find(&skills).Error; err != nil {
		a.l.Error("failed to get featured skills", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, skills)
}

// SkillCategories 去重后的分类名列表，前端按分类分组展示用
func (a *App) SkillCategories(c echo.Context) error {
	rctx := c.Request().Context()

	var categories []string
	if err := a.db.WithContext(rctx).Model(&models.Skill{}).Distinct().Order("skill_category ASC").Pluck("skill_category", &categories).Error; err != nil {
		a.l.Error("failed to get skill categories", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, categories)
}

func (a *App) SkillListByCategory(c echo.Context) error {
	category := c.Param("category")

	rctx := c.Request().Context()

	var skills []models.Skill
	if err := a.db.WithContext(rctx).Where("skill_category = ?", category).Order("display_order ASC, id ASC").Find(&skills).Error; err != nil {
		a.l.Error("failed to get skills by category", zap.String("category", category), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, skills)
}

func (a *App) SkillListByProfile(c echo.Context) error {
	profileID, err := paramID(c, "profileId")
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	var skills []models.Skill
	if err := a.db.WithContext(rctx).Where("profile_id = ?", profileID).Order("proficiency_level DESC").Find(&skills).Error; err != nil {
		a.l.Error("failed to get skills by profile", zap.Uint("profileId", profileID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, skills)
}

func (a *App) SkillGet(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	var skill models.Skill
	if err := a.db.WithContext(rctx).First(&skill, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get skill", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	return c.JSON(http.StatusOK, &skill)
}

func (a *App) SkillCreate(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req skillInput
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 创建
	var skill models.Skill
	a.skillMapFields(&req, &skill)

	// 检查 profile id
	if skill.ProfileID != 0 {
		if err, statusCode := validateIDs[models.Profile](a.db.WithContext(rctx), []uint{skill.ProfileID}); err != nil {
			a.l.Error("failed to validate profile", zap.Error(err))
			return a.er(c, statusCode)
		}
	}

	if err := a.db.WithContext(rctx).Create(&skill).Error; err != nil {
		a.l.Error("failed to create skill", zap.Any("skill", skill), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.dropCache(c, constants.CacheKeySkills)

	return c.JSON(http.StatusCreated, &skill)
}

func (a *App) SkillUpdate(c echo.Context) error {
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
	var req skillInput
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 从数据库中获得指定的技能
	var skill models.Skill
	if err := a.db.WithContext(rctx).First(&skill, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get skill", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	a.skillMapFields(&req, &skill)

	// 更新技能
	if err := a.db.WithContext(rctx).Updates(&skill).Error; err != nil {
		a.l.Error("failed to update skill", zap.Any("skill", skill), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.dropCache(c, constants.CacheKeySkills)

	return c.JSON(http.StatusOK, &skill)
}

func (a *App) SkillDelete(c echo.Context) error {
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

	// 删除技能
	if err := a.db.WithContext(rctx).Delete(&models.Skill{}, id).Error; err != nil {
		a.l.Error("failed to delete skill", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.dropCache(c, constants.CacheKeySkills)

	return c.NoContent(http.StatusOK)
}
