package models

import (
	"time"

	"gorm.io/gorm"
)

type Experience struct {
	gorm.Model

	JobTitle         string     `gorm:"column:job_title" json:"jobTitle"`                         // 职位名称
	CompanyName      string     `gorm:"column:company_name" json:"companyName"`                   // 公司名称
	CompanyLocation  string     `gorm:"column:company_location" json:"companyLocation"`           // 公司所在地
	StartDate        *time.Time `gorm:"column:start_date" json:"startDate"`                       // 入职日期
	EndDate          *time.Time `gorm:"column:end_date" json:"endDate"`                           // 离职日期，在职为 NULL
	IsCurrent        bool       `gorm:"column:is_current;index" json:"isCurrent"`                 // 是否在职
	Description      string     `gorm:"column:description;type:text" json:"description"`          // 工作内容
	TechnologiesUsed string     `gorm:"column:technologies_used" json:"technologiesUsed"`         // 使用的技术
	KeyAchievements  string     `gorm:"column:key_achievements;type:text" json:"keyAchievements"` // 主要成果
	DisplayOrder     int        `gorm:"column:display_order" json:"displayOrder"`                 // 排序权重

	ProfileID uint `gorm:"column:profile_id;index" json:"profileId"` // 所属档案 ID
}
