package inits

import (
	"fmt"
	"os"
	"strings"

	"webafan-portfolio/app/server/config"
	"webafan-portfolio/app/server/constants"
)

func Config() (cfg *config.Config, err error) {
	cfg = &config.Config{}

	// 手动配置映射，如果这里有什么自动映射工具就好了
	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":8080" // 默认监听地址
	} else {
		cfg.System.Listen = listen
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	if redisconn, exist := os.LookupEnv("REDIS_CONN"); !exist {
		return nil, fmt.Errorf("REDIS_CONN environment variable not set")
	} else {
		cfg.System.RedisConnectionString = redisconn
	}

	if sigsk, exist := os.LookupEnv("SIGNATURE_SECRET_KEY"); !exist {
		return nil, fmt.Errorf("SIGNATURE_SECRET_KEY environment variable not set")
	} else {
		cfg.Security.SignatureSecretKey = sigsk
	}

	if origins, exist := os.LookupEnv("CORS_ORIGINS"); !exist {
		cfg.System.CORSOrigins = []string{"*"}
	} else {
		for _, origin := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				cfg.System.CORSOrigins = append(cfg.System.CORSOrigins, trimmed)
			}
		}
	}

	if uploadDir, exist := os.LookupEnv("UPLOAD_DIR"); !exist {
		cfg.System.UploadDir = constants.UploadDirDefault
	} else {
		cfg.System.UploadDir = uploadDir
	}

	// WhatsApp 通知为可选功能，没有配置时跳过发送
	cfg.WhatsApp.APIURL = os.Getenv("WHATSAPP_API_URL")
	cfg.WhatsApp.Token = os.Getenv("WHATSAPP_API_TOKEN")
	cfg.WhatsApp.Sender = os.Getenv("WHATSAPP_SENDER")

	return cfg, nil
}
