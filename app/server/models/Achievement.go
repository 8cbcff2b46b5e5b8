package models

import (
	"time"

	"gorm.io/gorm"
)

// 成就类型
const (
	AchievementTypeCertification = "CERTIFICATION"
	AchievementTypeAward         = "AWARD"
	AchievementTypeHonor         = "HONOR"
	AchievementTypeLicense       = "LICENSE"
)

type Achievement struct {
	gorm.Model

	Title               string     `gorm:"column:title" json:"title"`                              // 名称
	IssuingOrganization string     `gorm:"column:issuing_organization" json:"issuingOrganization"` // 颁发机构
	IssueDate           *time.Time `gorm:"column:issue_date" json:"issueDate"`                     // 颁发日期
	ExpiryDate          *time.Time `gorm:"column:expiry_date" json:"expiryDate"`                   // 过期日期，长期有效为 NULL
	CredentialID        string     `gorm:"column:credential_id" json:"credentialId"`               // 证书编号
	CredentialURL       string     `gorm:"column:credential_url" json:"credentialUrl"`             // 证书验证链接
	Description         string     `gorm:"column:description;type:text" json:"description"`        // 描述
	AchievementType     string     `gorm:"column:achievement_type;index" json:"achievementType"`   // 类型：CERTIFICATION / AWARD / HONOR / LICENSE
	BadgeImageURL       string     `gorm:"column:badge_image_url" json:"badgeImageUrl"`            // 徽章图片地址
	DisplayOrder        int        `gorm:"column:display_order" json:"displayOrder"`               // 排序权重
	IsFeatured          bool       `gorm:"column:is_featured;index" json:"isFeatured"`             // 是否精选展示

	ProfileID uint `gorm:"column:profile_id;index" json:"profileId"` // 所属档案 ID
}
