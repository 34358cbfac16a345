package service

import (
	"context"

	interactiondb "PlayTube.com/cmd/interaction/dal/db"
	"PlayTube.com/cmd/video/dal/db"
	videoelastic "PlayTube.com/cmd/video/infras/elastic"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type DeleteVideoService struct {
	ctx context.Context
}

func NewDeleteVideoService(ctx context.Context) *DeleteVideoService {
	return &DeleteVideoService{ctx: ctx}
}

// DeleteVideo 只有作者能删 主记录删掉之后的清理都是尽力而为
// 评论和点赞同步清 媒体对象和索引失败只留日志
func (s *DeleteVideoService) DeleteVideo(videoId, userId int64) error {
	video, err := db.GetVideo(s.ctx, videoId)
	if err != nil {
		return err
	}
	if video.UserId != userId {
		return errno.ForbiddenErr
	}

	if err := db.DeleteVideo(s.ctx, videoId); err != nil {
		return err
	}

	if err := interactiondb.DeleteCommentsByVideo(s.ctx, videoId); err != nil {
		hlog.Warnf("delete comments of video %d failed: %v", videoId, err)
	}
	if err := interactiondb.DeleteLikesByVideo(s.ctx, videoId); err != nil {
		hlog.Warnf("delete likes of video %d failed: %v", videoId, err)
	}
	if err := oss.DeleteByUrl(s.ctx, video.VideoUrl); err != nil {
		hlog.Warnf("delete video object failed: %v", err)
	}
	if err := oss.DeleteByUrl(s.ctx, video.CoverUrl); err != nil {
		hlog.Warnf("delete thumbnail object failed: %v", err)
	}
	if err := videoelastic.DeleteVideoDoc(s.ctx, videoId); err != nil {
		hlog.Warnf("delete video doc %d failed: %v", videoId, err)
	}
	hlog.Infof("video %d deleted by user %d", videoId, userId)
	return nil
}
