// dependencies/upload_storage.go
package dependencies

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Xushengqwer/image_service/constant"
	"github.com/Xushengqwer/image_service/core"
)

// UploadStorage 管理上传根目录下的本地文件布局。
// 目录结构固定为 <root>/originals 与 <root>/thumbnails，
// 编辑产物与原图同目录存放。
type UploadStorage struct {
	root   string
	logger *core.ZapLogger
}

// InitUploadStorage 创建上传根目录及其子目录。
func InitUploadStorage(root string, logger *core.ZapLogger) (*UploadStorage, error) {
	if root == "" {
		return nil, fmt.Errorf("上传根目录 (uploadConfig.path) 未配置")
	}
	for _, sub := range []string{constant.UploadSubdirOriginals, constant.UploadSubdirThumbnails} {
		dir := filepath.Join(root, sub)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error("创建上传目录失败", zap.String("dir", dir), zap.Error(err))
			return nil, fmt.Errorf("创建上传目录 '%s' 失败: %w", dir, err)
		}
	}
	logger.Info("上传目录就绪", zap.String("root", root))
	return &UploadStorage{root: root, logger: logger}, nil
}

// Root 返回上传根目录，静态文件路由挂载时使用。
func (s *UploadStorage) Root() string {
	return s.root
}

// OriginalPath 返回原图（及编辑产物）所在目录下指定文件名的完整路径。
func (s *UploadStorage) OriginalPath(filename string) string {
	return filepath.Join(s.root, constant.UploadSubdirOriginals, filename)
}

// ThumbnailPath 返回缩略图目录下指定文件名的完整路径。
func (s *UploadStorage) ThumbnailPath(filename string) string {
	return filepath.Join(s.root, constant.UploadSubdirThumbnails, filename)
}

// SaveOriginal 把字节内容落盘为原图文件。
func (s *UploadStorage) SaveOriginal(filename string, data []byte) (string, error) {
	path := s.OriginalPath(filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("写入原图文件 '%s' 失败: %w", path, err)
	}
	return path, nil
}

// Remove 删除一个磁盘文件；文件不存在不算错误。
func (s *UploadStorage) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ListFiles 列出 originals 与 thumbnails 两个目录下的全部文件路径。
// 孤儿文件清扫任务使用。
func (s *UploadStorage) ListFiles() ([]string, error) {
	var paths []string
	for _, sub := range []string{constant.UploadSubdirOriginals, constant.UploadSubdirThumbnails} {
		dir := filepath.Join(s.root, sub)
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("读取上传目录 '%s' 失败: %w", dir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths, nil
}
