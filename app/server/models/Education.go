package models

import (
	"time"

	"gorm.io/gorm"
)

type Education struct {
	gorm.Model

	Degree              string     `gorm:"column:degree" json:"degree"`                            // 学位
	FieldOfStudy        string     `gorm:"column:field_of_study" json:"fieldOfStudy"`              // 专业
	InstitutionName     string     `gorm:"column:institution_name" json:"institutionName"`         // 学校名称
	InstitutionLocation string     `gorm:"column:institution_location" json:"institutionLocation"` // 学校所在地
	StartDate           *time.Time `gorm:"column:start_date" json:"startDate"`                     // 入学日期
	EndDate             *time.Time `gorm:"column:end_date" json:"endDate"`                         // 毕业日期，在读为 NULL
	IsCurrent           bool       `gorm:"column:is_current" json:"isCurrent"`                     // 是否在读
	GPA                 float64    `gorm:"column:gpa;type:decimal(3,2)" json:"gpa"`                // 绩点
	MaxGPA              float64    `gorm:"column:max_gpa;type:decimal(3,2)" json:"maxGpa"`         // 绩点满分
	Description         string     `gorm:"column:description;type:text" json:"description"`        // 描述
	DisplayOrder        int        `gorm:"column:display_order" json:"displayOrder"`               // 排序权重

	ProfileID uint `gorm:"column:profile_id;index" json:"profileId"` // 所属档案 ID
}
