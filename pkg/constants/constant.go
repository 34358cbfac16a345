package constants

const (
	DataFormate = "2006-01-02 15:04:05"

	DefaultPageNum  = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	DefaultSortField = "created_at"

	// minio 中的两个存储桶 视频文件和图片文件分开存放
	VideoBucket   = "video"
	PictureBucket = "picture"

	VideoIndex = "videos"

	MaxVideoSize     = 1 << 30 // 1GB
	MaxImageSize     = 10 << 20
	MaxTweetLength   = 280
	MaxCommentLength = 2000
)
