package models

import "gorm.io/gorm"

type Skill struct {
	gorm.Model

	SkillName        string `gorm:"column:skill_name" json:"skillName"`               // 技能名称
	SkillCategory    string `gorm:"column:skill_category;index" json:"skillCategory"` // 分类（Backend / Frontend / ...）
	ProficiencyLevel int    `gorm:"column:proficiency_level" json:"proficiencyLevel"` // 熟练度 1-100
	YearsExperience  int    `gorm:"column:years_experience" json:"yearsExperience"`   // 使用年数
	Description      string `gorm:"column:description;type:text" json:"description"`  // 描述
	IconURL          string `gorm:"column:icon_url" json:"iconUrl"`                   // 图标地址
	DisplayOrder     int    `gorm:"column:display_order" json:"displayOrder"`         // 排序权重
	IsFeatured       bool   `gorm:"column:is_featured;index" json:"isFeatured"`       // 是否精选展示

	ProfileID uint `gorm:"column:profile_id;index" json:"profileId"` // 所属档案 ID
}
