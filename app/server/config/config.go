package config

type Config struct {
	System struct {
		IsProd                bool     // 是否为生产环境
		Listen                string   // 监听地址
		DBConnectionString    string   // Postgres 数据库的连接字符串
		RedisConnectionString string   // Redis 数据库的连接字符串
		CORSOrigins           []string // 允许的跨域来源
		UploadDir             string   // 上传文件的储存目录
	}
	Security struct {
		SignatureSecretKey string // 签名密钥，用于产生签名（ JWT ），更新会导致旧有会话失效
	}
	WhatsApp struct {
		APIURL string // Wablas 接口地址，留空则不发送通知
		Token  string // 接口鉴权 token
		Sender string // 接收通知的号码
	}
}
