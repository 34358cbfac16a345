package db

import (
	"context"
	"time"

	"PlayTube.com/cmd/model"
	"PlayTube.com/pkg/constants"
	"PlayTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm/clause"
)

// AddWatchHistory 集合语义 (user_id, video_id)冲突时什么都不做
func AddWatchHistory(ctx context.Context, userId, videoId int64) error {
	history := &model.WatchHistory{
		WatchHistoryId: utils.NewID(),
		UserId:         userId,
		VideoId:        videoId,
		CreatedAt:      time.Now().Format(constants.DataFormate),
	}
	if err := DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(history).Error; err != nil {
		return errors.Wrapf(err, "AddWatchHistory failed,err:%v", err)
	}
	return nil
}

// GetWatchHistoryVideoIds 按观看时间倒序返回视频id
func GetWatchHistoryVideoIds(ctx context.Context, userId, pageNum, pageSize int64) ([]int64, int64, error) {
	var total int64
	db := DB.WithContext(ctx).Model(&model.WatchHistory{}).Where("user_id = ?", userId)
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "GetWatchHistoryVideoIds count failed,err:%v", err)
	}
	list := make([]int64, 0)
	if err := db.Order("created_at DESC").
		Limit(int(pageSize)).Offset(int((pageNum - 1) * pageSize)).
		Select("video_id").Scan(&list).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "GetWatchHistoryVideoIds failed,err:%v", err)
	}
	return list, total, nil
}
