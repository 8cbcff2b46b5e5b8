package constants

import "time"

// 登录令牌有效期，到期后需要重新登录（没有刷新机制）
const AuthTokenDuration = 2 * time.Hour

// 认证中间件写入 echo context 的键，值为 *models.User
const ContextKeyAuthUser = "authUser"
