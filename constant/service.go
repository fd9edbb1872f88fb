package constant

// 服务标识，用于追踪与日志。
const (
	ServiceName    = "image-service"
	ServiceVersion = "1.0.0"
)

// 上传目录布局与图片处理参数。
const (
	// UploadSubdirOriginals 原图（及编辑结果）子目录。
	UploadSubdirOriginals = "originals"
	// UploadSubdirThumbnails 缩略图子目录。
	UploadSubdirThumbnails = "thumbnails"

	// ThumbnailMaxEdge 缩略图最长边上限（像素），等比缩放且不放大。
	ThumbnailMaxEdge = 300
	// ThumbnailJPEGQuality 缩略图 JPEG 质量。
	ThumbnailJPEGQuality = 85
	// EditedJPEGQuality 编辑产物 JPEG 质量。
	EditedJPEGQuality = 90

	// ThumbnailFilenamePrefix 缩略图文件名前缀，拼在存储文件名之前。
	ThumbnailFilenamePrefix = "thumb-"
	// EditedFilenamePrefix 编辑产物文件名前缀。
	EditedFilenamePrefix = "edited-"
)

// COSObjectKeyPrefixOriginals 原图镜像在 COS 中的对象键前缀。
const COSObjectKeyPrefixOriginals = "images/originals/"

// OrphanSweepCronSpec 孤儿文件清扫任务的调度表达式（每小时整点）。
const OrphanSweepCronSpec = "0 * * * *"
