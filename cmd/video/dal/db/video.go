package db

import (
	"context"

	"PlayTube.com/cmd/model"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/query"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func InsertVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		return errors.Wrapf(err, "InsertVideo failed,err:%v", err)
	}
	return nil
}

func GetVideo(ctx context.Context, videoId int64) (*model.Video, error) {
	var video model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).First(&video).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.RecordNotFoundErr.WithMessage("video not found")
		}
		return nil, errors.Wrapf(err, "GetVideo failed,err:%v", err)
	}
	return &video, nil
}

// GetVideosByIds 对于视频列表的查询
func GetVideosByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error) {
	var videos []*model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id IN (?)", videoIds).Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "GetVideosByIds failed,err:%v", err)
	}
	return videos, nil
}

// QueryVideos 列表/搜索 只返回已发布的视频 排序字段过白名单
func QueryVideos(ctx context.Context, keyword, sortBy, sortType string, pageNum, pageSize int64) ([]*model.Video, int64, error) {
	b := query.New(DB, &model.Video{}, "visit_count", "duration", "title").
		Filter("is_published = ?", true).
		SortBy(sortBy, sortType).
		Paginate(pageNum, pageSize)
	if keyword != "" {
		b = b.Filter("title like ? Or description like ?", "%"+keyword+"%", "%"+keyword+"%")
	}
	var videos []*model.Video
	total, err := b.Find(ctx, &videos)
	if err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

// QueryVideosByOwner 创作者后台用 未发布的也一并返回
func QueryVideosByOwner(ctx context.Context, userId, pageNum, pageSize int64) ([]*model.Video, int64, error) {
	var videos []*model.Video
	total, err := query.New(DB, &model.Video{}, "visit_count").
		Filter("user_id = ?", userId).
		Paginate(pageNum, pageSize).
		Find(ctx, &videos)
	if err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

func UpdateVideo(ctx context.Context, videoId int64, updates map[string]interface{}) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "UpdateVideo failed,err:%v", err)
	}
	return nil
}

func DeleteVideo(ctx context.Context, videoId int64) error {
	if err := DB.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.Video{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteVideo failed,err:%v", err)
	}
	return nil
}

// IncrVisitCount 单条原子UPDATE 不在应用侧读改写
func IncrVisitCount(ctx context.Context, videoId int64) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		Update("visit_count", gorm.Expr("visit_count + 1")).Error; err != nil {
		return errors.Wrapf(err, "IncrVisitCount failed,err:%v", err)
	}
	return nil
}

func CountVideosByOwner(ctx context.Context, userId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountVideosByOwner failed,err:%v", err)
	}
	return count, nil
}

func SumVisitCountByOwner(ctx context.Context, userId int64) (int64, error) {
	var total *int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userId).
		Select("sum(visit_count)").Scan(&total).Error; err != nil {
		return 0, errors.Wrapf(err, "SumVisitCountByOwner failed,err:%v", err)
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
