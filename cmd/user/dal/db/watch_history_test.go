package db

import (
	"context"
	"testing"

	"PlayTube.com/cmd/model"
	"PlayTube.com/pkg/utils"
)

// TestAddWatchHistoryTwice 重复观看同一个视频 历史里仍然只有一行
// 这个测试需要实际的数据库连接 CI环境默认跳过
func TestAddWatchHistoryTwice(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database integration test in short mode")
	}
	if DB == nil {
		t.Skip("database not initialized, run with a configured MySQL instance")
	}

	ctx := context.Background()
	userId := utils.NewID()
	videoId := utils.NewID()
	defer DB.Where("user_id = ?", userId).Delete(&model.WatchHistory{})

	if err := AddWatchHistory(ctx, userId, videoId); err != nil {
		t.Fatalf("first AddWatchHistory failed: %v", err)
	}
	if err := AddWatchHistory(ctx, userId, videoId); err != nil {
		t.Fatalf("second AddWatchHistory failed: %v", err)
	}

	var count int64
	if err := DB.Model(&model.WatchHistory{}).
		Where("user_id = ? AND video_id = ?", userId, videoId).
		Count(&count).Error; err != nil {
		t.Fatalf("count watch history failed: %v", err)
	}
	if count != 1 {
		t.Errorf("watch history rows = %d, want 1", count)
	}
}
