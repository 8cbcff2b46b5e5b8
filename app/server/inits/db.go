package inits

import (
	"fmt"
	"time"

	"webafan-portfolio/app/server/models"

	"github.com/alexedwards/argon2id"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func DB(conn string) (db *gorm.DB, err error) {
	// 打开连接
	if db, err = gorm.Open(postgres.Open(conn), &gorm.Config{}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 迁移
	if err = mig(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 初始化启动数据
	if err = initData(db); err != nil {
		return nil, fmt.Errorf("failed to init data into database: %w", err)
	}

	// 返回
	return db, nil
}

func mig(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Project{},
		&models.Skill{},
		&models.Education{},
		&models.Experience{},
		&models.Achievement{},
		&models.Contact{},
	)
}

func initData(db *gorm.DB) (err error) {
	// 查询现有记录数量
	var counter int64

	// 初始化管理员用户
	if err = db.Model(&models.User{}).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get user count: %w", err)
	} else if counter == 0 { // 没有任何用户，添加初始用户
		// 创建密码
		var password string
		if password, err = argon2id.CreateHash("P@ssw0rd", argon2id.DefaultParams); err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}

		// 插入记录
		if err = db.Create(&models.User{
			Username: "afan",
			FullName: "M. Darmawan Fadilah",
			Role:     models.RoleAdmin,
			IsActive: true,
			Password: password,
		}).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
	}

	// 初始化档案数据
	if err = db.Model(&models.Profile{}).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get profile count: %w", err)
	} else if counter == 0 { // 没有任何档案，导入主档案与附属数据
		if err = seedPortfolio(db); err != nil {
			return fmt.Errorf("failed to seed portfolio data: %w", err)
		}
	}

	// 已有数据或全部导入成功
	return nil
}

func seedPortfolio(db *gorm.DB) (err error) {
	profile := models.Profile{
		FullName:        "M. Darmawan Fadilah S.Kom, M.Kom",
		Title:           "Senior Developer",
		Email:           "muhammaddarmawan@gmail.com",
		Phone:           "+62 856 0012 7 856",
		BirthDate:       date(1997, 12, 8),
		BirthPlace:      "Palangka Raya",
		Address:         "Bukit Nusa Indah, Jl. Cempaka kav. 248, Tangerang Selatan",
		CurrentAddress:  "Tangerang Selatan, Indonesia",
		About:           "Senior developer with a focus on backend engineering and delivery of production systems.",
		YearsExperience: 7,
		LinkedinURL:     "https://www.linkedin.com/in/muhammad-darmawan-fadilah",
		GithubURL:       "https://github.com/MuhammadDarmawanFadilah",
	}
	if err = db.Create(&profile).Error; err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	if err = db.Create([]*models.Experience{
		{
			JobTitle:         "Senior Developer",
			CompanyName:      "PT. Bank Rakyat Indonesia",
			CompanyLocation:  "Jakarta",
			StartDate:        date(2021, 1, 1),
			IsCurrent:        true,
			Description:      "Backend development for core banking integrations.",
			TechnologiesUsed: "Java, Spring Boot, PostgreSQL",
			KeyAchievements:  "Led delivery of several high-volume internal services.",
			DisplayOrder:     1,
			ProfileID:        profile.ID,
		},
		{
			JobTitle:         "Software Engineer",
			CompanyName:      "PT. Sigma Cipta Caraka",
			CompanyLocation:  "Tangerang",
			StartDate:        date(2018, 7, 1),
			EndDate:          date(2020, 12, 31),
			Description:      "Built and maintained enterprise web applications.",
			TechnologiesUsed: "Java, Oracle, React",
			DisplayOrder:     2,
			ProfileID:        profile.ID,
		},
	}).Error; err != nil {
		return fmt.Errorf("failed to create initial experiences: %w", err)
	}

	if err = db.Create([]*models.Education{
		{
			Degree:              "Master of Computer Science (M.Kom)",
			FieldOfStudy:        "Computer Science",
			InstitutionName:     "Universitas Budi Luhur",
			InstitutionLocation: "Jakarta",
			StartDate:           date(2020, 9, 1),
			EndDate:             date(2022, 8, 1),
			GPA:                 3.85,
			MaxGPA:              4.0,
			DisplayOrder:        1,
			ProfileID:           profile.ID,
		},
		{
			Degree:              "Bachelor of Computer Science (S.Kom)",
			FieldOfStudy:        "Informatics Engineering",
			InstitutionName:     "Universitas Palangka Raya",
			InstitutionLocation: "Palangka Raya",
			StartDate:           date(2015, 9, 1),
			EndDate:             date(2019, 8, 1),
			GPA:                 3.7,
			MaxGPA:              4.0,
			DisplayOrder:        2,
			ProfileID:           profile.ID,
		},
	}).Error; err != nil {
		return fmt.Errorf("failed to create initial educations: %w", err)
	}

	if err = db.Create([]*models.Skill{
		{SkillName: "Java / Spring Boot", SkillCategory: "Backend", ProficiencyLevel: 95, YearsExperience: 7, DisplayOrder: 1, IsFeatured: true, ProfileID: profile.ID},
		{SkillName: "Go", SkillCategory: "Backend", ProficiencyLevel: 80, YearsExperience: 3, DisplayOrder: 2, IsFeatured: true, ProfileID: profile.ID},
		{SkillName: "PostgreSQL", SkillCategory: "Database", ProficiencyLevel: 90, YearsExperience: 6, DisplayOrder: 3, IsFeatured: true, ProfileID: profile.ID},
		{SkillName: "React", SkillCategory: "Frontend", ProficiencyLevel: 75, YearsExperience: 4, DisplayOrder: 4, ProfileID: profile.ID},
		{SkillName: "Docker / Kubernetes", SkillCategory: "DevOps", ProficiencyLevel: 80, YearsExperience: 4, DisplayOrder: 5, ProfileID: profile.ID},
	}).Error; err != nil {
		return fmt.Errorf("failed to create initial skills: %w", err)
	}

	if err = db.Create([]*models.Achievement{
		{
			Title:               "Oracle Certified Professional, Java SE",
			IssuingOrganization: "Oracle",
			IssueDate:           date(2022, 3, 15),
			AchievementType:     models.AchievementTypeCertification,
			IsFeatured:          true,
			DisplayOrder:        1,
			ProfileID:           profile.ID,
		},
		{
			Title:               "Best Employee of the Year",
			IssuingOrganization: "PT. Bank Rakyat Indonesia",
			IssueDate:           date(2023, 12, 20),
			AchievementType:     models.AchievementTypeAward,
			DisplayOrder:        2,
			ProfileID:           profile.ID,
		},
	}).Error; err != nil {
		return fmt.Errorf("failed to create initial achievements: %w", err)
	}

	return nil
}

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}
