package models

import "gorm.io/gorm"

// 联系方式偏好
const (
	ContactMethodWhatsApp = "whatsapp"
	ContactMethodEmail    = "email"
)

type Contact struct {
	gorm.Model

	// 访客填写的内容
	Name        string `gorm:"column:name" json:"name"`                 // 访客姓名
	Email       string `gorm:"column:email" json:"email"`               // 访客邮箱
	Subject     string `gorm:"column:subject" json:"subject"`           // 主题
	Message     string `gorm:"column:message;type:text" json:"message"` // 留言内容
	PhoneNumber string `gorm:"column:phone_number" json:"phoneNumber"`  // 访客电话（可选）

	// 通知状态
	ContactMethod string `gorm:"column:contact_method;default:whatsapp" json:"contactMethod"` // 期望的回复渠道
	WhatsappSent  bool   `gorm:"column:whatsapp_sent" json:"whatsappSent"`                    // WhatsApp 通知是否发送成功
	EmailSent     bool   `gorm:"column:email_sent" json:"emailSent"`                          // 邮件通知是否发送成功
}
