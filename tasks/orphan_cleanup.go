// File: tasks/orphan_cleanup.go
package tasks

import (
	"context"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/image_service/constant"
	"github.com/Xushengqwer/image_service/core"
	"github.com/Xushengqwer/image_service/dependencies"
	"github.com/Xushengqwer/image_service/repo/mysql"
)

// orphanMinAge 只清理早于该年龄的孤儿文件。
// 正在进行中的上传/编辑已经落盘但尚未入库，太新的文件不能动。
const orphanMinAge = time.Hour

// OrphanCleanupTask 定时清扫上传目录里数据库不再引用的文件。
// 孤儿的来源：入库失败前已落盘的原图/缩略图、被替换后删除失败的旧编辑产物。
type OrphanCleanupTask struct {
	imageRepo mysql.ImageRepository
	storage   *dependencies.UploadStorage
	cron      *cron.Cron
	logger    *core.ZapLogger
}

// NewOrphanCleanupTask 初始化并启动孤儿文件清扫定时任务。
func NewOrphanCleanupTask(imageRepo mysql.ImageRepository, storage *dependencies.UploadStorage, logger *core.ZapLogger) *OrphanCleanupTask {
	cronV3 := cron.New()

	task := &OrphanCleanupTask{
		imageRepo: imageRepo,
		storage:   storage,
		cron:      cronV3,
		logger:    logger,
	}
	task.startCronJob()
	return task
}

// startCronJob 配置并启动 cron 作业。
func (t *OrphanCleanupTask) startCronJob() {
	schedule := constant.OrphanSweepCronSpec
	t.logger.Info("准备启动孤儿文件清扫定时任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		t.logger.Info("孤儿文件清扫任务开始执行...")
		startTime := time.Now()
		// 单次执行超时 5 分钟，防止任务卡死
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		t.sweep(ctx)

		t.logger.Info("孤儿文件清扫任务执行完毕", zap.Duration("duration", time.Since(startTime)))
	})
	if err != nil {
		t.logger.Fatal("添加孤儿文件清扫 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("孤儿文件清扫定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// sweep 是定时任务执行的实际清扫逻辑。
// 以数据库为准：磁盘上存在、数据库任何行（含软删除行）都不引用、
// 且修改时间早于 orphanMinAge 的文件被删除。
func (t *OrphanCleanupTask) sweep(ctx context.Context) {
	referenced, err := t.imageRepo.ListReferencedPaths(ctx)
	if err != nil {
		t.logger.Error("获取数据库引用的文件路径失败，本轮清扫跳过", zap.Error(err))
		return
	}
	referencedSet := make(map[string]struct{}, len(referenced))
	for _, path := range referenced {
		referencedSet[path] = struct{}{}
	}

	onDisk, err := t.storage.ListFiles()
	if err != nil {
		t.logger.Error("列举上传目录文件失败，本轮清扫跳过", zap.Error(err))
		return
	}

	cutoff := time.Now().Add(-orphanMinAge)
	removed := 0
	for _, path := range onDisk {
		if _, ok := referencedSet[path]; ok {
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue // 可能属于尚未入库的进行中请求
		}
		if err := t.storage.Remove(path); err != nil {
			t.logger.Warn("删除孤儿文件失败", zap.String("path", path), zap.Error(err))
			continue
		}
		t.logger.Info("已删除孤儿文件", zap.String("path", path))
		removed++
	}

	t.logger.Info("本轮清扫结果",
		zap.Int("onDisk", len(onDisk)),
		zap.Int("referenced", len(referenced)),
		zap.Int("removed", removed),
	)
}

// Stop 停止定时任务并等待进行中的作业完成。
func (t *OrphanCleanupTask) Stop() {
	t.logger.Info("正在停止孤儿文件清扫定时任务...")
	stopCtx := t.cron.Stop()
	<-stopCtx.Done()
	t.logger.Info("孤儿文件清扫定时任务已停止")
}
