package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"webafan-portfolio/app/server/models"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type contactSubmitRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	PhoneNumber string `json:"phoneNumber"`
}

type contactSubmitResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ContactID     uint   `json:"contactId"`
	WhatsappSent  bool   `json:"whatsappSent"`
	EmailSent     bool   `json:"emailSent"`
	Timestamp     string `json:"timestamp"`
	PrimaryMethod string `json:"primaryMethod"`
	ResponseTime  string `json:"responseTime"`
}

// ContactSubmit 公开的联系表单提交：先落库，再尽力发送 WhatsApp 通知。
// 通知失败不影响提交结果，只会让 whatsappSent 保持 false 。
func (a *App) ContactSubmit(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req contactSubmitRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 基本校验
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Message) == "" {
		return a.er(c, http.StatusBadRequest)
	}

	contact := models.Contact{
		Name:          req.Name,
		Email:         req.Email,
		Subject:       req.Subject,
		Message:       req.Message,
		PhoneNumber:   req.PhoneNumber,
		ContactMethod: models.ContactMethodWhatsApp,
	}

	if err := a.db.WithContext(rctx).Create(&contact).Error; err != nil {
		a.l.Error("failed to create contact", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 发送 WhatsApp 通知
	if a.wa.Enabled() {
		if err := a.wa.SendContactFormMessage(rctx, &contact); err != nil {
			a.l.Error("failed to send whatsapp notification", zap.Uint("contactId", contact.ID), zap.Error(err))
		} else {
			contact.WhatsappSent = true
			if err := a.db.WithContext(rctx).Model(&contact).Update("whatsapp_sent", true).Error; err != nil {
				a.l.Error("failed to mark whatsapp sent", zap.Uint("contactId", contact.ID), zap.Error(err))
			}
		}
	}

	res := contactSubmitResponse{
		Success:      true,
		Message:      "Your message has been sent successfully! I'll get back to you within 24 hours.",
		ContactID:    contact.ID,
		WhatsappSent: contact.WhatsappSent,
		EmailSent:    contact.EmailSent,
		Timestamp:    contact.CreatedAt.Format(time.RFC3339),
	}
	if contact.WhatsappSent {
		res.PrimaryMethod = "WhatsApp"
		res.ResponseTime = "I typically respond via WhatsApp within 2-4 hours during business hours."
	} else {
		res.PrimaryMethod = "Email"
		res.ResponseTime = "I'll respond via email within 24 hours."
	}

	return c.JSON(http.StatusOK, &res)
}

type contactListResponse struct {
	Limit   int              `json:"limit"`
	PageMax int64            `json:"pageMax"`
	List    []models.Contact `json:"list"`
}

func (a *App) ContactList(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	var (
		contacts      []models.Contact
		contactsCount int64
	)

	showAll, page, limit := a.parsePagination(c)
	queryBase := a.db.WithContext(rctx).Model(&models.Contact{}).Order("id DESC")
	if !showAll {
		queryBase = queryBase.Limit(limit).Offset(page * limit)
	}

	if err := queryBase.Find(&contacts).Error; err != nil {
		a.l.Error("failed to get contact list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	if err := a.db.WithContext(rctx).Model(&models.Contact{}).Count(&contactsCount).Error; err != nil {
		a.l.Error("failed to count contact", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, &contactListResponse{
		Limit:   limit,
		PageMax: a.calcMaxPage(contactsCount, showAll, limit),
		List:    contacts,
	})
}

// ContactRecent 最近 10 条留言
func (a *App) ContactRecent(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	var contacts []models.Contact
	if err := a.db.WithContext(rctx).Order("id DESC").Limit(10).Find(&contacts).Error; err != nil {
		a.l.Error("failed to get recent contacts", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, contacts)
}

func (a *App) ContactGet(c echo.Context) error {
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

	var contact models.Contact
	if err := a.db.WithContext(rctx).First(&contact, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get contact", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	return c.JSON(http.StatusOK, &contact)
}

type contactStatsResponse struct {
	Total        int64 `json:"total"`
	WhatsappSent int64 `json:"whatsappSent"`
	EmailSent    int64 `json:"emailSent"`
	Today        int64 `json:"today"`
}

func (a *App) ContactStats(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	var stats contactStatsResponse
	base := a.db.WithContext(rctx).Model(&models.Contact{})

	if err := base.Session(&gorm.Session{}).Count(&stats.Total).Error; err != nil {
		a.l.Error("failed to count contacts", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	if err := base.Session(&gorm.Session{}).Where("whatsapp_sent = true").Count(&stats.WhatsappSent).Error; err != nil {
		a.l.Error("failed to count whatsapp sent contacts", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	if err := base.Session(&gorm.Session{}).Where("email_sent = true").Count(&stats.EmailSent).Error; err != nil {
		a.l.Error("failed to count email sent contacts", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	todayStart := time.Now().Truncate(24 * time.Hour)
	if err := base.Session(&gorm.Session{}).Where("created_at >= ?", todayStart).Count(&stats.Today).Error; err != nil {
		a.l.Error("failed to count today contacts", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, &stats)
}

// ContactResendWhatsApp 对指定留言重新发送 WhatsApp 通知
func (a *App) ContactResendWhatsApp(c echo.Context) error {
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

	var contact models.Contact
	if err := a.db.WithContext(rctx).First(&contact, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get contact", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	if !a.wa.Enabled() {
		return a.er(c, http.StatusServiceUnavailable)
	}

	if err := a.wa.SendContactFormMessage(rctx, &contact); err != nil {
		a.l.Error("failed to resend whatsapp notification", zap.Uint("contactId", contact.ID), zap.Error(err))
		return a.er(c, http.StatusBadGateway)
	}

	contact.WhatsappSent = true
	if err := a.db.WithContext(rctx).Model(&contact).Update("whatsapp_sent", true).Error; err != nil {
		a.l.Error("failed to mark whatsapp sent", zap.Uint("contactId", contact.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, &contact)
}

func (a *App) ContactDelete(c echo.Context) error {
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

	// 删除留言
	if err := a.db.WithContext(rctx).Delete(&models.Contact{}, id).Error; err != nil {
		a.l.Error("failed to delete contact", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}
