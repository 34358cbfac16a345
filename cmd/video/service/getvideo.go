package service

import (
	"context"

	interactiondb "PlayTube.com/cmd/interaction/dal/db"
	"PlayTube.com/cmd/model"
	relationdb "PlayTube.com/cmd/relation/dal/db"
	userdb "PlayTube.com/cmd/user/dal/db"
	"PlayTube.com/cmd/video/dal/db"
	"PlayTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type GetVideoService struct {
	ctx context.Context
}

func NewGetVideoService(ctx context.Context) *GetVideoService {
	return &GetVideoService{ctx: ctx}
}

// GetVideo 视频详情 未发布的只有作者自己能看到 其他人一律404
// 每次成功获取都计一次播放 登录用户还会记进观看历史
func (s *GetVideoService) GetVideo(videoId, viewerId int64) (*model.VideoInfo, error) {
	video, err := db.GetVideo(s.ctx, videoId)
	if err != nil {
		return nil, err
	}
	if !video.IsPublished && video.UserId != viewerId {
		return nil, errno.RecordNotFoundErr.WithMessage("video not found")
	}

	if err := db.IncrVisitCount(s.ctx, videoId); err != nil {
		return nil, err
	}
	video.VisitCount++
	if viewerId > 0 {
		if err := userdb.AddWatchHistory(s.ctx, viewerId, videoId); err != nil {
			// 历史记录是旁路数据 失败不拦截主流程
			hlog.Warnf("add watch history failed: %v", err)
		}
	}

	owner, err := userdb.GetUser(s.ctx, video.UserId)
	if err != nil {
		return nil, errors.WithMessage(err, "query video owner failed")
	}
	subscribers, err := relationdb.CountSubscribers(s.ctx, owner.UserId)
	if err != nil {
		return nil, err
	}
	isSubscribed := false
	if viewerId > 0 {
		isSubscribed, err = relationdb.IsSubscribed(s.ctx, owner.UserId, viewerId)
		if err != nil {
			return nil, err
		}
	}

	likes, err := interactiondb.CountLikesByVideo(s.ctx, videoId)
	if err != nil {
		return nil, err
	}
	isLiked := false
	if viewerId > 0 {
		isLiked, err = interactiondb.IsVideoLiked(s.ctx, viewerId, videoId)
		if err != nil {
			return nil, err
		}
	}

	return &model.VideoInfo{
		Video:      *video,
		LikesCount: likes,
		IsLiked:    isLiked,
		Author: &model.Author{
			UserId:           owner.UserId,
			UserName:         owner.UserName,
			FullName:         owner.FullName,
			AvatarUrl:        owner.AvatarUrl,
			SubscribersCount: subscribers,
			IsSubscribed:     isSubscribed,
		},
	}, nil
}
