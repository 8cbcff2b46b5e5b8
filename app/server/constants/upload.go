package constants

// 上传文件
const (
	UploadDirDefault = "/data/portfolio/uploads/"

	UploadCVPrefix = "CV_" // 简历文件名前缀

	UploadMaxImageSize = 5 << 20  // 图片最大 5MB
	UploadMaxCVSize    = 10 << 20 // 简历最大 10MB
)

// 允许上传的图片类型
var UploadImageContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// 允许上传的简历类型
var UploadCVContentTypes = map[string]string{
	"application/pdf": ".pdf",
}
