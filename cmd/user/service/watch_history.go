package service

import (
	"context"

	"PlayTube.com/cmd/model"
	"PlayTube.com/cmd/user/dal/db"
	videodb "PlayTube.com/cmd/video/dal/db"
	"PlayTube.com/pkg/query"
	"github.com/pkg/errors"
)

type WatchHistoryService struct {
	ctx context.Context
}

func NewWatchHistoryService(ctx context.Context) *WatchHistoryService {
	return &WatchHistoryService{ctx: ctx}
}

// GetWatchHistory 观看历史 最近看过的在前 每个视频带作者信息
func (s *WatchHistoryService) GetWatchHistory(userId, pageNum, pageSize int64) ([]*model.VideoInfo, int64, error) {
	pageNum, pageSize = query.NormalizePage(pageNum, pageSize)
	videoIds, total, err := db.GetWatchHistoryVideoIds(s.ctx, userId, pageNum, pageSize)
	if err != nil {
		return nil, 0, err
	}
	if len(videoIds) == 0 {
		return []*model.VideoInfo{}, total, nil
	}

	videos, err := videodb.GetVideosByIds(s.ctx, videoIds)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "hydrate history videos failed")
	}
	byId := make(map[int64]*model.Video, len(videos))
	ownerIds := make([]int64, 0, len(videos))
	for _, v := range videos {
		byId[v.VideoId] = v
		ownerIds = append(ownerIds, v.UserId)
	}
	owners, err := db.GetUsersByIds(s.ctx, ownerIds)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "hydrate video owners failed")
	}
	ownerById := make(map[int64]*model.User, len(owners))
	for _, u := range owners {
		ownerById[u.UserId] = u
	}

	// 保持观看时间顺序
	res := make([]*model.VideoInfo, 0, len(videoIds))
	for _, vid := range videoIds {
		v, ok := byId[vid]
		if !ok {
			continue // 视频已被删除
		}
		info := &model.VideoInfo{Video: *v}
		if owner, ok := ownerById[v.UserId]; ok {
			info.Author = &model.Author{
				UserId:    owner.UserId,
				UserName:  owner.UserName,
				FullName:  owner.FullName,
				AvatarUrl: owner.AvatarUrl,
			}
		}
		res = append(res, info)
	}
	return res, total, nil
}
