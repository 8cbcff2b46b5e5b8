package models

import (
	"time"

	"gorm.io/gorm"
)

// 用户角色
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

type User struct {
	gorm.Model

	// 基础信息
	Username string `gorm:"column:username;uniqueIndex" json:"username"` // 用户名，全局唯一，作为 token subject
	FullName string `gorm:"column:full_name" json:"fullName"`            // 显示名称
	Role     string `gorm:"column:role" json:"role"`                     // 角色：ADMIN 可以写入（更改），USER 只能读取（浏览）
	IsActive bool   `gorm:"column:is_active" json:"isActive"`            // 是否启用：停用的用户无法登录

	// 登录与授权认证相关
	Password  string     `gorm:"column:password" json:"-"`           // 密码，使用 argon2id 储存
	LastLogin *time.Time `gorm:"column:last_login" json:"lastLogin"` // 最后一次成功登录时间
}
