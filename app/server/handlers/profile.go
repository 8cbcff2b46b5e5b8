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

type profileInput struct {
	FullName        *string    `json:"fullName"`
	Title           *string    `json:"title"`
	Email           *string    `json:"email"`
	Phone           *string    `json:"phone"`
	BirthDate       *time.Time `json:"birthDate"`
	BirthPlace      *string    `json:"birthPlace"`
	Address         *string    `json:"address"`
	CurrentAddress  *string    `json:"currentAddress"`
	About           *string    `json:"about"`
	ProfileImageURL *string    `json:"profileImageUrl"`
	YearsExperience *int       `json:"yearsExperience"`
	LinkedinURL     *string    `json:"linkedinUrl"`
	GithubURL       *string    `json:"githubUrl"`
	WebsiteURL      *string    `json:"websiteUrl"`
}

func (a *App) profileMapFields(req *profileInput, profile *models.Profile) {
	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.Title != nil {
		profile.Title = *req.Title
	}
	if req.Email != nil {
		profile.Email = *req.Email
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.BirthDate != nil {
		profile.BirthDate = req.BirthDate
	}
	if req.BirthPlace != nil {
		profile.BirthPlace = *req.BirthPlace
	}
	if req.Address != nil {
		profile.Address = *req.Address
	}
	if req.CurrentAddress != nil {
		profile.CurrentAddress = *req.CurrentAddress
	}
	if req.About != nil {
		profile.About = *req.About
	}
	if req.ProfileImageURL != nil {
		profile.ProfileImageURL = *req.ProfileImageURL
	}
	if req.YearsExperience != nil {
		profile.YearsExperience = *req.YearsExperience
	}
	if req.LinkedinURL != nil {
		profile.LinkedinURL = *req.LinkedinURL
	}
	if req.GithubURL != nil {
		profile.GithubURL = *req.GithubURL
	}
	if req.WebsiteURL != nil {
		profile.WebsiteURL = *req.WebsiteURL
	}
}

func (a *App) ProfileList(c echo.Context) error {
	rctx := c.Request().Context()

	var profiles []models.Profile
	if err := a.db.WithContext(rctx).Order("id ASC").Find(&profiles).Error; err != nil {
		a.l.Error("failed to get profile list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, profiles)
}

// ProfilePublic 门户首页使用的主档案（最早创建的一条）
func (a *App) ProfilePublic(c echo.Context) error {
	rctx := c.Request().Context()

	return a.cachedJSON(c, constants.CacheKeyProfilePublic, func() (any, error) {
		var profile models.Profile
		if err := a.db.WithContext(rctx).Order("id ASC").First(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	})
}

func (a *App) ProfileGet(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	var profile models.Profile
	if err := a.db.WithContext(rctx).First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get profile", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	return c.JSON(http.StatusOK, &profile)
}

func (a *App) ProfileGetByEmail(c echo.Context) error {
	email := c.Param("email")

	rctx := c.Request().Context()

	var profile models.Profile
	if err := a.db.WithContext(rctx).First(&profile, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get profile by email", zap.String("email", email), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	return c.JSON(http.StatusOK, &profile)
}

func (a *App) ProfileCheckEmail(c echo.Context) error {
	email := c.Param("email")

	rctx := c.Request().Context()

	var count int64
	if err := a.db.WithContext(rctx).Model(&models.Profile{}).Where("email = ?", email).Count(&count).Error; err != nil {
		a.l.Error("failed to check profile email", zap.String("email", email), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, map[string]bool{"exists": count > 0})
}

func (a *App) ProfileCreate(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req profileInput
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 创建
	var profile models.Profile
	a.profileMapFields(&req, &profile)

	if err := a.db.WithContext(rctx).Create(&profile).Error; err != nil {
		a.l.Error("failed to create profile", zap.Any("profile", profile), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.dropCache(c, constants.CacheKeyProfilePublic)

	return c.JSON(http.StatusCreated, &profile)
}

func (a *App) ProfileUpdate(c echo.Context) error {
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
	var req profileInput
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 从数据库中获得指定的档案
	var profile models.Profile
	if err := a.db.WithContext(rctx).First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get profile", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	a.profileMapFields(&req, &profile)

	// 更新档案
	if err := a.db.WithContext(rctx).Updates(&profile).Error; err != nil {
		a.l.Error("failed to update profile", zap.Any("profile", profile), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.dropCache(c, constants.CacheKeyProfilePublic)

	return c.JSON(http.StatusOK, &profile)
}

func (a *App) ProfileDelete(c echo.Context) error {
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

	// 删除档案
	if err := a.db.WithContext(rctx).Delete(&models.Profile{}, id).Error; err != nil {
		a.l.Error("failed to delete profile", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.dropCache(c, constants.CacheKeyProfilePublic)

	return c.NoContent(http.StatusOK)
}
