package service

import (
	"context"
	"time"

	"PlayTube.com/cmd/model"
	"PlayTube.com/cmd/video/dal/db"
	videoelastic "PlayTube.com/cmd/video/infras/elastic"
	"PlayTube.com/pkg/constants"
	"PlayTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type TogglePublishService struct {
	ctx context.Context
}

func NewTogglePublishService(ctx context.Context) *TogglePublishService {
	return &TogglePublishService{ctx: ctx}
}

// TogglePublish 发布状态取反 下架的视频同时从搜索索引里摘掉
func (s *TogglePublishService) TogglePublish(videoId, userId int64) (*model.Video, error) {
	video, err := db.GetVideo(s.ctx, videoId)
	if err != nil {
		return nil, err
	}
	if video.UserId != userId {
		return nil, errno.ForbiddenErr
	}

	next := !video.IsPublished
	err = db.UpdateVideo(s.ctx, videoId, map[string]interface{}{
		"is_published": next,
		"updated_at":   time.Now().Format(constants.DataFormate),
	})
	if err != nil {
		return nil, err
	}
	video.IsPublished = next

	if next {
		err = videoelastic.IndexVideo(s.ctx, &videoelastic.VideoDoc{
			VideoId:     video.VideoId,
			UserId:      video.UserId,
			Title:       video.Title,
			Description: video.Description,
			CoverUrl:    video.CoverUrl,
			CreatedAt:   video.CreatedAt,
		})
	} else {
		err = videoelastic.DeleteVideoDoc(s.ctx, videoId)
	}
	if err != nil {
		hlog.Warnf("sync video %d search doc failed: %v", videoId, err)
	}
	return video, nil
}
