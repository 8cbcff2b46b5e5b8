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

type educationInput struct {
	Degree              *string    `json:"degree"`
	FieldOfStudy        *string    `json:"fieldOfStudy"`
	InstitutionName     *string    `json:"institutionName"`
	InstitutionLocation *string    `json:"institutionLocation"`
	StartDate           *time.Time `json:"startDate"`
	EndDate             *time.Time `json:"endDate"`
	IsCurrent           *bool      `json:"isCurrent"`
	GPA                 *float64   `json:"gpa"`
	MaxGPA              *float64   `json:"maxGpa"`
	Description         *string    `json:"description"`
	DisplayOrder        *int       `json:"displayOrder"`
	ProfileID           *uint      `json:"profileId"`
}

func (a *App) educationMapFields(req *educationInput, education *models.Education) {
	if req.Degree != nil {
		education.Degree = *req.Degree
	}
	if req.FieldOfStudy != nil {
		education.FieldOfStudy = *req.FieldOfStudy
	}
	if req.InstitutionName != nil {
		education.InstitutionName = *req.InstitutionName
	}
	if req.InstitutionLocation != nil {
		education.InstitutionLocation = *req.InstitutionLocation
	}
	if req.StartDate != nil {
		education.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		education.EndDate = req.EndDate
	}
	if req.IsCurrent != nil {
		education.IsCurrent = *req.IsCurrent
	}
	if req.GPA != nil {
		education.GPA = *req.GPA
	}
	if req.MaxGPA != nil {
		education.MaxGPA = *req.MaxGPA
	}
	if req.Description != nil {
		education.Description = *req.Description
	}
	if req.DisplayOrder != nil {
		education.DisplayOrder = *req.DisplayOrder
	}
	if req.ProfileID != nil {
		education.ProfileID = *req.ProfileID
	}
}

func (a *App) EducationList(c echo.Context) error {
	rctx := c.Request().Context()

	return a.cachedJSON(c, constants.CacheKeyEducations, func() (any, error) {
		var educations []models.Education
		if err := a.db.WithContext(rctx).Order("display_order ASC, id ASC").Find(&educations).Error; err != nil {
			return nil, err
		}
		return educations, nil
	})
}

func (a *App) EducationGet(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	var education models.Education
	if err := a.db.WithContext(rctx).First(&education, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get education", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	return c.JSON(http.StatusOK, &education)
}

func (a *App) EducationCreate(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req educationInput
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 创建
	var education models.Education
	a.educationMapFields(&req, &education)

	// 检查 profile id
	if education.ProfileID != 0 {
		if err, statusCode := validateIDs[models.Profile](a.db.WithContext(rctx), []uint{education.ProfileID}); err != nil {
			a.l.Error("failed to validate profile", zap.Error(err))
			return a.er(c, statusCode)
		}
	}

	if err := a.db.WithContext(rctx).Create(&education).Error; err != nil {
		a.l.Error("failed to create education", zap.Any("education", education), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.dropCache(c, constants.CacheKeyEducations)

	return c.JSON(http.StatusCreated, &education)
}

func (a *App) EducationUpdate(c echo.Context) error {
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
	var req educationInput
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 从数据库中获得指定的教育经历
	var education models.Education
	if err := a.db.WithContext(rctx).First(&education, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get education", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	a.educationMapFields(&req, &education)

	// 更新教育经历
	if err := a.db.WithContext(rctx).Updates(&education).Error; err != nil {
		a.l.Error("failed to update education", zap.Any("education", education), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.dropCache(c, constants.CacheKeyEducations)

	return c.JSON(http.StatusOK, &education)
}

func (a *App) EducationDelete(c echo.Context) error {
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

	// 删除教育经历
	if err := a.db.WithContext(rctx).Delete(&models.Education{}, id).Error; err != nil {
		a.l.Error("failed to delete education", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.dropCache(c, constants.CacheKeyEducations)

	return c.NoContent(http.StatusOK)
}
