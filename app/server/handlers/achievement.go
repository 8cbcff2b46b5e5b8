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

type achievementInput struct {
	Title               *string    `json:"title"`
	IssuingOrganization *string    `json:"issuingOrganization"`
	IssueDate           *time.Time `json:"issueDate"`
	ExpiryDate          *time.Time `json:"expiryDate"`
	CredentialID        *string    `json:"credentialId"`
	CredentialURL       *string    `json:"credentialUrl"`
	Description         *string    `json:"description"`
	AchievementType     *string    `json:"achievementType"`
	BadgeImageURL       *string    `json:"badgeImageUrl"`
	DisplayOrder        *int       `json:"displayOrder"`
	IsFeatured          *bool      `json:"isFeatured"`
	ProfileID           *uint      `json:"profileId"`
}

func (a *App) achievementMapFields(req *achievementInput, achievement *models.Achievement) {
	if req.Title != nil {
		achievement.Title = *req.Title
	}
	if req.IssuingOrganization != nil {
		achievement.IssuingOrganization = *req.IssuingOrganization
	}
	if req.IssueDate != nil {
		achievement.IssueDate = req.IssueDate
	}
	if req.ExpiryDate != nil {
		achievement.ExpiryDate = req.ExpiryDate
	}
	if req.CredentialID != nil {
		achievement.CredentialID = *req.CredentialID
	}
	if req.CredentialURL != nil {
		achievement.CredentialURL = *req.CredentialURL
	}
	if req.Description != nil {
		achievement.Description = *req.Description
	}
	if req.AchievementType != nil {
		achievement.AchievementType = *req.AchievementType
	}
	if req.BadgeImageURL != nil {
		achievement.BadgeImageURL = *req.BadgeImageURL
	}
	if req.DisplayOrder != nil {
		achievement.DisplayOrder = *req.DisplayOrder
	}
	if req.IsFeatured != nil {
		achievement.IsFeatured = *req.IsFeatured
	}
	if req.ProfileID != nil {
		achievement.ProfileID = *req.ProfileID
	}
}

func (a *App) AchievementList(c echo.Context) error {
	rctx := c.Request().Context()

	return a.cachedJSON(c, constants.CacheKeyAchievements, func() (any, error) {
		var achievements []models.Achievement
		if err := a.db.WithContext(rctx).Order("display_order ASC, id ASC").Find(&achievements).Error; err != nil {
			return nil, err
		}
		return achievements, nil
	})
}

func (a *App) AchievementFeatured(c echo.Context) error {
	rctx := c.Request().Context()

	var achievements []models.Achievement
	if err := a.db.WithContext(rctx).Where("is_featured = true").Order("display_order ASC, id ASC").Find(&achievements).Error; err != nil {
		a.l.Error("failed to get featured achievements", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, achievements)
}

func (a *App) AchievementGet(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	var achievement models.Achievement
	if err := a.db.WithContext(rctx).First(&achievement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get achievement", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	return c.JSON(http.StatusOK, &achievement)
}

func (a *App) AchievementCreate(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req achievementInput
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 创建
	var achievement models.Achievement
	a.achievementMapFields(&req, &achievement)

	// 检查 profile id
	if achievement.ProfileID != 0 {
		if err, statusCode := validateIDs[models.Profile](a.db.WithContext(rctx), []uint{achievement.ProfileID}); err != nil {
			a.l.Error("failed to validate profile", zap.Error(err))
			return a.er(c, statusCode)
		}
	}

	if err := a.db.WithContext(rctx).Create(&achievement).Error; err != nil {
		a.l.Error("failed to create achievement", zap.Any("achievement", achievement), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.dropCache(c, constants.CacheKeyAchievements)

	return c.JSON(http.StatusCreated, &achievement)
}

func (a *App) AchievementUpdate(c echo.Context) error {
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
	var req achievementInput
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 从数据库中获得指定的成就
	var achievement models.Achievement
	if err := a.db.WithContext(rctx).First(&achievement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get achievement", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	a.achievementMapFields(&req, &achievement)

	// 更新成就
	if err := a.db.WithContext(rctx).Updates(&achievement).Error; err != nil {
		a.l.Error("failed to update achievement", zap.Any("achievement", achievement), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.dropCache(c, constants.CacheKeyAchievements)

	return c.JSON(http.StatusOK, &achievement)
}

func (a *App) AchievementDelete(c echo.Context) error {
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

	// 删除成就
	if err := a.db.WithContext(rctx).Delete(&models.Achievement{}, id).Error; err != nil {
		a.l.Error("failed to delete achievement", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.dropCache(c, constants.CacheKeyAchievements)

	return c.NoContent(http.StatusOK)
}
