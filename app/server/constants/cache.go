package constants

import "time"

const (
	CacheKeyUserInfo = "portfolio:user:info:%s" // %s -> username

	CacheKeyProfilePublic = "portfolio:public:profile"
	CacheKeyProjects      = "portfolio:public:projects"
	CacheKeySkills        = "portfolio:public:skills"
	CacheKeyEducations    = "portfolio:public:educations"
	CacheKeyExperiences   = "portfolio:public:experiences"
	CacheKeyAchievements  = "portfolio:public:achievements"
)

const (
	CacheExpireUserInfo = 1 * time.Hour
	CacheExpirePublic   = 10 * time.Minute
)
