package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// 项目状态
const (
	ProjectStatusCurrent  = "CURRENT"
	ProjectStatusFinished = "FINISHED"
	ProjectStatusPaused   = "PAUSED"
)

type Project struct {
	gorm.Model

	// 基础信息
	Title            string     `gorm:"column:title" json:"title"`                         // 项目名称
	Description      string     `gorm:"column:description;type:text" json:"description"`   // 详细介绍
	ShortDescription string     `gorm:"column:short_description" json:"shortDescription"`  // 简短介绍（列表页使用）
	StartDate        *time.Time `gorm:"column:start_date" json:"startDate"`                // 开始日期
	EndDate          *time.Time `gorm:"column:end_date" json:"endDate"`                    // 结束日期，进行中的项目为 NULL
	Status           string     `gorm:"column:status;default:CURRENT;index" json:"status"` // 状态：CURRENT / FINISHED / PAUSED

	// 链接
	ProjectURL string `gorm:"column:project_url" json:"projectUrl"`
	GithubURL  string `gorm:"column:github_url" json:"githubUrl"`
	DemoURL    string `gorm:"column:demo_url" json:"demoUrl"`
	ImageURL   string `gorm:"column:image_url" json:"imageUrl"`

	// 项目细节
	Technologies         pq.StringArray `gorm:"column:technologies;type:text[]" json:"technologies"` // 使用的技术栈
	Features             pq.StringArray `gorm:"column:features;type:text[]" json:"features"`         // 功能亮点
	ClientName           string         `gorm:"column:client_name" json:"clientName"`                // 客户名称
	TeamSize             int            `gorm:"column:team_size" json:"teamSize"`                    // 团队规模
	MyRole               string         `gorm:"column:my_role" json:"myRole"`                        // 在项目中的角色
	CompletionPercentage int            `gorm:"column:completion_percentage" json:"completionPercentage"`

	// 展示相关
	IsFeatured   bool `gorm:"column:is_featured;index" json:"isFeatured"` // 是否在首页精选展示
	DisplayOrder int  `gorm:"column:display_order" json:"displayOrder"`   // 排序权重

	ProfileID uint `gorm:"column:profile_id;index" json:"profileId"` // 所属档案 ID
}
