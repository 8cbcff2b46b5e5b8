package models

import (
	"time"

	"gorm.io/gorm"
)

type Profile struct {
	gorm.Model

	// 基础信息
	FullName   string     `gorm:"column:full_name" json:"fullName"`      // 全名
	Title      string     `gorm:"column:title" json:"title"`             // 头衔（职位）
	Email      string     `gorm:"column:email;uniqueIndex" json:"email"` // 邮箱，全局唯一
	Phone      string     `gorm:"column:phone" json:"phone"`             // 电话
	BirthDate  *time.Time `gorm:"column:birth_date" json:"birthDate"`    // 出生日期
	BirthPlace string     `gorm:"column:birth_place" json:"birthPlace"`  // 出生地

	// 地址与简介
	Address        string `gorm:"column:address;type:text" json:"address"`                // 户籍地址
	CurrentAddress string `gorm:"column:current_address;type:text" json:"currentAddress"` // 现居地址
	About          string `gorm:"column:about;type:text" json:"about"`                    // 自我介绍

	// 展示相关
	ProfileImageURL string `gorm:"column:profile_image_url" json:"profileImageUrl"` // 头像地址
	YearsExperience int    `gorm:"column:years_experience" json:"yearsExperience"`  // 从业年数
	LinkedinURL     string `gorm:"column:linkedin_url" json:"linkedinUrl"`
	GithubURL       string `gorm:"column:github_url" json:"githubUrl"`
	WebsiteURL      string `gorm:"column:website_url" json:"websiteUrl"`
}
